package speech

import (
	"log/slog"
	"os/exec"
	"time"

	"github.com/sashabaranov/go-openai"
)

// TTS engine choices for Config.TTS.
const (
	TTSAuto    = "auto"
	TTSCommand = "command"
	TTSOpenAI  = "openai"
	TTSOff     = "off"
)

// Config selects the speech backends.
type Config struct {
	Enabled      bool
	TTS          string // auto, command, openai or off
	Engine       string // command engine; empty picks the first installed
	Player       string // audio player for OpenAI TTS
	Recorder     string // arecord or rec
	MaxUtterance time.Duration
	OpenAIAPIKey string
	Rate         float64
}

// Options are the injectable dependencies of Detect.
type Options struct {
	LookPath func(string) (string, error)
	Run      CommandFunc
	Logger   *slog.Logger
	// Client overrides the OpenAI client built from Config.OpenAIAPIKey.
	Client interface {
		SpeechClient
		TranscriptionClient
	}
}

// Detect builds the best available speaker and listener. Anything that
// cannot be satisfied on this system comes back as Unavailable.
func Detect(cfg Config, opts Options) (Speaker, Listener) {
	if opts.LookPath == nil {
		opts.LookPath = exec.LookPath
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRate
	}
	if !cfg.Enabled {
		return Unavailable{}, Unavailable{}
	}

	client := opts.Client
	if client == nil && cfg.OpenAIAPIKey != "" {
		client = openai.NewClient(cfg.OpenAIAPIKey)
	}

	var speaker Speaker = Unavailable{}
	engine := pick(opts.LookPath, cfg.Engine, Engines)
	player := pick(opts.LookPath, cfg.Player, Players)

	switch cfg.TTS {
	case TTSOff:
	case TTSCommand:
		if engine != "" {
			speaker = NewCommandSpeaker(engine, cfg.Rate, opts.Run)
		}
	case TTSOpenAI:
		if client != nil && player != "" {
			speaker = NewOpenAISpeaker(client, player, cfg.Rate, opts.Run, opts.Logger)
		}
	default:
		switch {
		case engine != "":
			speaker = NewCommandSpeaker(engine, cfg.Rate, opts.Run)
		case client != nil && player != "":
			speaker = NewOpenAISpeaker(client, player, cfg.Rate, opts.Run, opts.Logger)
		}
	}

	var listener Listener = Unavailable{}
	if recorder := pick(opts.LookPath, cfg.Recorder, Recorders); recorder != "" && client != nil {
		listener = NewWhisperListener(client, recorder, cfg.MaxUtterance, opts.Run, opts.Logger)
	}

	opts.Logger.Debug("speech detected",
		"speaker_available", speaker.Available(),
		"listener_available", listener.Available(),
		"engine", engine, "player", player)
	return speaker, listener
}

// pick returns preferred when it is installed, otherwise the first
// installed candidate. A preferred program that is missing yields "".
func pick(lookPath func(string) (string, error), preferred string, candidates []string) string {
	if preferred != "" {
		if _, err := lookPath(preferred); err == nil {
			return preferred
		}
		return ""
	}
	for _, c := range candidates {
		if _, err := lookPath(c); err == nil {
			return c
		}
	}
	return ""
}
