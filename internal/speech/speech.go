// Package speech provides text-to-speech playback and single-utterance
// capture behind small interfaces, so the lesson screen can run with a
// real engine, a fake, or nothing at all.
package speech

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// DefaultRate is the playback speed used for lesson phrases.
const DefaultRate = 0.9

// Speaker plays text aloud.
type Speaker interface {
	Available() bool
	// Speak blocks until playback finishes. A new call cancels any
	// playback still in flight.
	Speak(ctx context.Context, text, tag string) error
	// Stop cancels in-flight playback.
	Stop()
}

// Listener captures one utterance and returns its transcript.
type Listener interface {
	Available() bool
	Listen(ctx context.Context, tag string) (string, error)
}

// Unavailable is the Speaker and Listener used when no engine exists.
type Unavailable struct{}

func (Unavailable) Available() bool { return false }

func (Unavailable) Speak(context.Context, string, string) error { return unsupported("speak") }

func (Unavailable) Stop() {}

func (Unavailable) Listen(context.Context, string) (string, error) {
	return "", unsupported("listen")
}

// CommandFunc runs an external program to completion.
type CommandFunc func(ctx context.Context, name string, args ...string) error

func execCommand(ctx context.Context, name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// playback tracks the single in-flight utterance of a speaker.
type playback struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
}

// begin cancels the previous utterance and returns a context for the new
// one, plus the func that releases it.
func (p *playback) begin(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)

	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.seq++
	seq := p.seq
	p.cancel = cancel
	p.mu.Unlock()

	return ctx, func() {
		cancel()
		p.mu.Lock()
		if p.seq == seq {
			p.cancel = nil
		}
		p.mu.Unlock()
	}
}

func (p *playback) stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}
