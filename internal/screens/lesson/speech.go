package lesson

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingo/internal/lessongen"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/speech"
)

// speak reads the current prompt aloud: the phrase to translate in the
// learner's language, the solution once a sentence is checked, or the
// focused option in the target language.
func (s *Screen) speak() tea.Cmd {
	if !s.deps.Speaker.Available() {
		s.notice = "Speech playback is not available on this system."
		return nil
	}

	var text, tag string
	switch q := s.progress.Current().(type) {
	case *lessongen.Sentence:
		if s.progress.Status() == session.StatusUnanswered {
			text, tag = q.Phrase, s.req.Native.Tag
		} else {
			text, tag = q.Solution(), s.req.Target.Tag
		}
	case *lessongen.ImageChoice:
		text, tag = s.options.Focused(), s.req.Target.Tag
	}
	if text == "" {
		return nil
	}

	ctx, speaker, epoch := s.ctx, s.deps.Speaker, s.stamp()
	return func() tea.Msg {
		return spokenMsg{Epoch: epoch, Err: speaker.Speak(ctx, text, tag)}
	}
}

// toggleMic starts a capture for the current sentence, or abandons the
// one in progress.
func (s *Screen) toggleMic() tea.Cmd {
	if _, ok := s.progress.Current().(*lessongen.Sentence); !ok {
		return nil
	}
	if s.listening {
		s.stopListening()
		s.notice = ""
		return nil
	}
	if !s.deps.Mic.Available() {
		s.notice = "Microphone input is not available on this system."
		return nil
	}

	s.listening = true
	s.capture++
	s.notice = fmt.Sprintf("Listening... say the sentence in %s (m to stop)", s.req.Target.Name)
	ctx, mic, epoch, capture, tag := s.ctx, s.deps.Mic, s.stamp(), s.capture, s.req.Target.Tag
	return func() tea.Msg {
		text, err := mic.Listen(ctx, tag)
		return heardMsg{Epoch: epoch, Capture: capture, Transcript: text, Err: err}
	}
}

func (s *Screen) stopListening() {
	if s.listening {
		s.deps.Mic.Stop()
		s.listening = false
	}
}

// handleHeard rebuilds the answer from a transcript by matching spoken
// words against the bank.
func (s *Screen) handleHeard(msg heardMsg) (screen.Screen, tea.Cmd) {
	if !s.listening || msg.Capture != s.capture {
		return s, nil
	}
	s.listening = false

	switch {
	case errors.Is(msg.Err, context.Canceled):
		return s, nil
	case msg.Err != nil:
		s.notice = speechNotice(msg.Err)
		return s, nil
	}

	indices := speech.MatchTranscript(msg.Transcript, s.bank.Words)
	if len(indices) == 0 {
		s.notice = fmt.Sprintf("Heard %q but none of the words are in the bank.", msg.Transcript)
		return s, nil
	}
	s.bank = s.bank.SetPlaced(indices)
	s.progress.Select(session.WordsAnswer(s.bank.Answer()))
	s.notice = fmt.Sprintf("Heard %q", msg.Transcript)
	return s, nil
}

func speechNotice(err error) string {
	switch {
	case errors.Is(err, speech.ErrPermissionDenied):
		return "Microphone access was denied. You can still build the answer with the keyboard."
	case errors.Is(err, speech.ErrUnsupported):
		return "Speech is not supported on this system."
	default:
		return "Speech failed: " + err.Error()
	}
}
