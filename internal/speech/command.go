package speech

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

// Speech engines CommandSpeaker knows how to drive, in preference order.
var Engines = []string{"espeak-ng", "espeak", "say"}

// macOS voices per language tag; other tags use the system voice.
var sayVoices = map[string]string{
	"en-us": "Samantha",
	"en-gb": "Daniel",
	"pt-pt": "Joana",
	"fr-fr": "Thomas",
	"de-de": "Anna",
	"it-it": "Alice",
	"ja-jp": "Kyoko",
	"es-es": "Monica",
}

// CommandSpeaker speaks through a local TTS program.
type CommandSpeaker struct {
	engine string
	rate   float64
	run    CommandFunc
	play   playback
}

// NewCommandSpeaker drives engine, one of Engines. run may be nil.
func NewCommandSpeaker(engine string, rate float64, run CommandFunc) *CommandSpeaker {
	if run == nil {
		run = execCommand
	}
	if rate <= 0 {
		rate = 1
	}
	return &CommandSpeaker{engine: engine, rate: rate, run: run}
}

func (s *CommandSpeaker) Engine() string  { return s.engine }
func (s *CommandSpeaker) Available() bool { return s.engine != "" }
func (s *CommandSpeaker) Stop()           { s.play.stop() }

func (s *CommandSpeaker) Speak(ctx context.Context, text, tag string) error {
	if !s.Available() {
		return unsupported("speak")
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	ctx, done := s.play.begin(ctx)
	defer done()

	err := s.run(ctx, s.engine, s.args(text, tag)...)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return Classify("speak", err)
}

// args builds the command line. Both engines default to 175 words per
// minute.
func (s *CommandSpeaker) args(text, tag string) []string {
	wpm := strconv.Itoa(int(175 * s.rate))
	tag = strings.ToLower(tag)
	if strings.HasPrefix(text, "-") {
		text = " " + text
	}

	switch s.engine {
	case "say":
		args := []string{"-r", wpm}
		if v, ok := sayVoices[tag]; ok {
			args = append(args, "-v", v)
		}
		return append(args, text)
	default:
		args := []string{"-s", wpm}
		if tag != "" {
			args = append(args, "-v", tag)
		}
		return append(args, text)
	}
}
