package speech

import (
	"context"
	"sync"
)

// Mic makes a Listener exclusive: one capture runs at a time. Starting a
// new capture stops the previous one, and Stop abandons it.
type Mic struct {
	listener Listener

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
}

func NewMic(l Listener) *Mic {
	if l == nil {
		l = Unavailable{}
	}
	return &Mic{listener: l}
}

func (m *Mic) Available() bool { return m.listener.Available() }

// Listen captures one utterance, stopping any capture still in flight. It
// returns context.Canceled when stopped. Other failures are classified
// *Error values.
func (m *Mic) Listen(ctx context.Context, tag string) (string, error) {
	if !m.listener.Available() {
		return "", unsupported("listen")
	}

	ctx, cancel := context.WithCancel(ctx)
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
	}
	m.seq++
	seq := m.seq
	m.cancel = cancel
	m.mu.Unlock()

	defer func() {
		cancel()
		m.mu.Lock()
		if m.seq == seq {
			m.cancel = nil
		}
		m.mu.Unlock()
	}()

	text, err := m.listener.Listen(ctx, tag)
	if err != nil {
		if ctx.Err() != nil {
			return "", context.Canceled
		}
		return "", Classify("listen", err)
	}
	if ctx.Err() != nil {
		return "", context.Canceled
	}
	return text, nil
}

// Stop abandons the active capture, if any, and reports whether one was
// running.
func (m *Mic) Stop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel == nil {
		return false
	}
	m.cancel()
	m.cancel = nil
	return true
}
