// Package config loads lingo's settings from a YAML file and LINGO_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/abhisek/lingo/internal/llm"
	"github.com/abhisek/lingo/internal/speech"
)

// EnvPrefix prefixes every environment override, e.g. LINGO_LLM_PROVIDER.
const EnvPrefix = "LINGO"

// Config holds all application configuration.
type Config struct {
	DB     string       `mapstructure:"db"`
	Log    LogConfig    `mapstructure:"log"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Speech SpeechConfig `mapstructure:"speech"`
	Lesson LessonConfig `mapstructure:"lesson"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

type LLMConfig struct {
	Provider         string        `mapstructure:"provider" validate:"omitempty,oneof=gemini openai anthropic openrouter mock"`
	Model            string        `mapstructure:"model"`
	ImageModel       string        `mapstructure:"image_model"`
	BaseURL          string        `mapstructure:"base_url" validate:"omitempty,url"`
	MaxAttempts      int           `mapstructure:"max_attempts" validate:"gte=1,lte=10"`
	Timeout          time.Duration `mapstructure:"timeout" validate:"gte=0"`
	GeminiAPIKey     string        `mapstructure:"gemini_api_key"`
	OpenAIAPIKey     string        `mapstructure:"openai_api_key"`
	AnthropicAPIKey  string        `mapstructure:"anthropic_api_key"`
	OpenRouterAPIKey string        `mapstructure:"openrouter_api_key"`
}

type SpeechConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	TTS          string        `mapstructure:"tts" validate:"oneof=auto command openai off"`
	Engine       string        `mapstructure:"engine" validate:"omitempty,oneof=espeak-ng espeak say"`
	Player       string        `mapstructure:"player"`
	Recorder     string        `mapstructure:"recorder" validate:"omitempty,oneof=arecord rec"`
	MaxUtterance time.Duration `mapstructure:"max_utterance" validate:"gte=0,lte=1m"`
	Rate         float64       `mapstructure:"rate" validate:"gt=0,lte=2"`
}

type LessonConfig struct {
	Lives  int  `mapstructure:"lives" validate:"gte=1,lte=5"`
	Images bool `mapstructure:"images"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.image_model", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.max_attempts", 1)
	v.SetDefault("llm.timeout", 60*time.Second)
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.anthropic_api_key", "")
	v.SetDefault("llm.openrouter_api_key", "")

	v.SetDefault("speech.enabled", true)
	v.SetDefault("speech.tts", speech.TTSAuto)
	v.SetDefault("speech.engine", "")
	v.SetDefault("speech.player", "")
	v.SetDefault("speech.recorder", "")
	v.SetDefault("speech.max_utterance", 5*time.Second)
	v.SetDefault("speech.rate", speech.DefaultRate)

	v.SetDefault("lesson.lives", 5)
	v.SetDefault("lesson.images", true)
}

// Dir returns the directory searched for config.yaml:
// $XDG_CONFIG_HOME/lingo, falling back to the OS user config dir.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "lingo")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "lingo")
	}
	return "."
}

// Load reads configuration. An explicit path must exist; without one,
// config.yaml in Dir() is optional. Environment variables take precedence
// over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate checks field constraints and reports every violation.
func (c *Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fieldPath(fe.Namespace()), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// fieldPath turns "Config.LLM.MaxAttempts" into "LLM.MaxAttempts".
func fieldPath(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return ns
	}
	return rest
}

// LLMConfig builds the provider configuration. Keys missing from the
// config fall back to the providers' standard env vars, and without an
// explicit provider the first one with a key is used.
func (c *Config) LLMConfig() llm.Config {
	cfg := llm.DefaultConfig()
	cfg.Gemini.APIKey = c.LLM.GeminiAPIKey
	cfg.OpenAI.APIKey = c.LLM.OpenAIAPIKey
	cfg.Anthropic.APIKey = c.LLM.AnthropicAPIKey
	cfg.OpenRouter.APIKey = c.LLM.OpenRouterAPIKey
	cfg.ApplyEnvKeys()

	cfg.Provider = c.LLM.Provider
	if cfg.Provider == "" {
		cfg.Provider = cfg.KeyedProvider()
	}
	if cfg.Provider == "" {
		cfg.Provider = llm.DefaultConfig().Provider
	}

	if m := c.LLM.Model; m != "" {
		switch cfg.Provider {
		case "gemini":
			cfg.Gemini.Model = m
		case "openai":
			cfg.OpenAI.Model = m
		case "anthropic":
			cfg.Anthropic.Model = m
		case "openrouter":
			cfg.OpenRouter.Model = m
		}
	}
	if m := c.LLM.ImageModel; m != "" {
		switch cfg.Provider {
		case "gemini":
			cfg.Gemini.ImageModel = m
		case "openai":
			cfg.OpenAI.ImageModel = m
		}
	}
	if u := c.LLM.BaseURL; u != "" {
		switch cfg.Provider {
		case "openai":
			cfg.OpenAI.BaseURL = u
		case "openrouter":
			cfg.OpenRouter.BaseURL = u
		}
	}

	cfg.Retry.MaxAttempts = max(c.LLM.MaxAttempts, 1)
	if c.LLM.Timeout > 0 {
		cfg.Timeout = c.LLM.Timeout
	}
	return cfg
}

// SpeechConfig builds the speech backend selection. Whisper and OpenAI
// TTS share the OpenAI key with the LLM settings.
func (c *Config) SpeechConfig() speech.Config {
	key := c.LLM.OpenAIAPIKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	return speech.Config{
		Enabled:      c.Speech.Enabled,
		TTS:          c.Speech.TTS,
		Engine:       c.Speech.Engine,
		Player:       c.Speech.Player,
		Recorder:     c.Speech.Recorder,
		MaxUtterance: c.Speech.MaxUtterance,
		OpenAIAPIKey: key,
		Rate:         c.Speech.Rate,
	}
}
