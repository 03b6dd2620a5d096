package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/sashabaranov/go-openai"
)

// SpeechClient is the part of the OpenAI client used for TTS.
type SpeechClient interface {
	CreateSpeech(ctx context.Context, req openai.CreateSpeechRequest) (openai.RawResponse, error)
}

// TranscriptionClient is the part of the OpenAI client used for STT.
type TranscriptionClient interface {
	CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error)
}

// Audio players OpenAISpeaker can use, in preference order.
var Players = []string{"ffplay", "mpv", "afplay", "mpg123"}

// Recorders WhisperListener can use, in preference order.
var Recorders = []string{"arecord", "rec"}

// OpenAISpeaker synthesizes speech with the OpenAI TTS API and plays the
// mp3 through a local player.
type OpenAISpeaker struct {
	client SpeechClient
	model  openai.SpeechModel
	voice  openai.SpeechVoice
	player string
	rate   float64
	run    CommandFunc
	play   playback
	logger *slog.Logger
}

// NewOpenAISpeaker creates a speaker. run and logger may be nil.
func NewOpenAISpeaker(client SpeechClient, player string, rate float64, run CommandFunc, logger *slog.Logger) *OpenAISpeaker {
	if run == nil {
		run = execCommand
	}
	if logger == nil {
		logger = slog.Default()
	}
	if rate <= 0 {
		rate = 1
	}
	return &OpenAISpeaker{
		client: client,
		model:  openai.TTSModelGPT4oMini,
		voice:  openai.VoiceAlloy,
		player: player,
		rate:   rate,
		run:    run,
		logger: logger,
	}
}

func (s *OpenAISpeaker) Available() bool { return s.client != nil && s.player != "" }
func (s *OpenAISpeaker) Stop()           { s.play.stop() }

func (s *OpenAISpeaker) Speak(ctx context.Context, text, tag string) error {
	if !s.Available() {
		return unsupported("speak")
	}
	if text == "" {
		return nil
	}

	ctx, done := s.play.begin(ctx)
	defer done()

	err := s.speak(ctx, text, tag)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return Classify("speak", err)
}

func (s *OpenAISpeaker) speak(ctx context.Context, text, tag string) error {
	start := time.Now()
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          s.model,
		Input:          text,
		Voice:          s.voice,
		Instructions:   "Speak clearly for a language learner. The text is in " + tag + ".",
		ResponseFormat: openai.SpeechResponseFormatMp3,
		Speed:          s.rate,
	})
	if err != nil {
		return fmt.Errorf("synthesize: %w", err)
	}
	defer resp.Close()

	f, err := os.CreateTemp("", "lingo-tts-*.mp3")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if _, err := io.Copy(f, resp); err != nil {
		f.Close()
		return fmt.Errorf("write audio: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.logger.Debug("speech synthesized", "tag", tag, "latency", time.Since(start))

	return s.run(ctx, s.player, playerArgs(s.player, f.Name())...)
}

func playerArgs(player, path string) []string {
	switch player {
	case "ffplay":
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}
	case "mpv":
		return []string{"--no-video", "--really-quiet", path}
	case "mpg123":
		return []string{"-q", path}
	default:
		return []string{path}
	}
}

// WhisperListener records one utterance with a local recorder and
// transcribes it with Whisper.
type WhisperListener struct {
	client       TranscriptionClient
	recorder     string
	maxUtterance time.Duration
	run          CommandFunc
	logger       *slog.Logger
}

// NewWhisperListener creates a listener. run and logger may be nil.
func NewWhisperListener(client TranscriptionClient, recorder string, maxUtterance time.Duration, run CommandFunc, logger *slog.Logger) *WhisperListener {
	if run == nil {
		run = execCommand
	}
	if logger == nil {
		logger = slog.Default()
	}
	if maxUtterance <= 0 {
		maxUtterance = 5 * time.Second
	}
	return &WhisperListener{
		client:       client,
		recorder:     recorder,
		maxUtterance: maxUtterance,
		run:          run,
		logger:       logger,
	}
}

func (l *WhisperListener) Available() bool { return l.client != nil && l.recorder != "" }

// Listen records for up to the configured utterance length. Cancelling
// ctx abandons the capture.
func (l *WhisperListener) Listen(ctx context.Context, tag string) (string, error) {
	if !l.Available() {
		return "", unsupported("listen")
	}

	f, err := os.CreateTemp("", "lingo-stt-*.wav")
	if err != nil {
		return "", Classify("listen", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := l.run(ctx, l.recorder, recorderArgs(l.recorder, path, l.maxUtterance)...); err != nil {
		return "", Classify("listen", fmt.Errorf("record: %w", err))
	}

	resp, err := l.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: path,
		Language: isoCode(tag),
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", Classify("listen", fmt.Errorf("transcribe: %w", err))
	}
	l.logger.Debug("utterance transcribed", "tag", tag, "chars", len(resp.Text))
	return resp.Text, nil
}

func recorderArgs(recorder, path string, d time.Duration) []string {
	secs := strconv.Itoa(max(1, int(math.Ceil(d.Seconds()))))
	switch recorder {
	case "rec":
		return []string{"-q", "-r", "16000", "-c", "1", path, "trim", "0", secs}
	default:
		return []string{"-q", "-f", "S16_LE", "-r", "16000", "-c", "1", "-d", secs, path}
	}
}

// isoCode returns the ISO 639-1 part of a BCP 47 tag.
func isoCode(tag string) string {
	for i, r := range tag {
		if r == '-' || r == '_' {
			return tag[:i]
		}
	}
	return tag
}
