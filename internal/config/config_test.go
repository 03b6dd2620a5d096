package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config discovery at an empty dir and clears key env vars.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{
		"GEMINI_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"LINGO_LLM_PROVIDER", "LINGO_LLM_GEMINI_API_KEY", "LINGO_LLM_OPENAI_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1, cfg.LLM.MaxAttempts)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.True(t, cfg.Speech.Enabled)
	assert.Equal(t, "auto", cfg.Speech.TTS)
	assert.Equal(t, 5*time.Second, cfg.Speech.MaxUtterance)
	assert.Equal(t, 5, cfg.Lesson.Lives)
	assert.True(t, cfg.Lesson.Images)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
db: /tmp/lingo-test.db
log:
  level: debug
llm:
  provider: openai
  model: gpt-4.1-mini
  max_attempts: 3
  timeout: 30s
  openai_api_key: sk-file
speech:
  tts: command
  engine: espeak-ng
  max_utterance: 8s
lesson:
  lives: 3
  images: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/lingo-test.db", cfg.DB)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.LLM.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 8*time.Second, cfg.Speech.MaxUtterance)
	assert.Equal(t, 3, cfg.Lesson.Lives)
	assert.False(t, cfg.Lesson.Images)

	lc := cfg.LLMConfig()
	assert.Equal(t, "openai", lc.Provider)
	assert.Equal(t, "gpt-4.1-mini", lc.OpenAI.Model)
	assert.Equal(t, "sk-file", lc.OpenAI.APIKey)
	assert.Equal(t, 3, lc.Retry.MaxAttempts)
	assert.NoError(t, lc.Validate())

	sc := cfg.SpeechConfig()
	assert.Equal(t, "sk-file", sc.OpenAIAPIKey)
	assert.Equal(t, "espeak-ng", sc.Engine)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "llm:\n  provider: openai\n")
	t.Setenv("LINGO_LLM_PROVIDER", "gemini")
	t.Setenv("LINGO_LLM_GEMINI_API_KEY", "g-env")
	t.Setenv("LINGO_LESSON_LIVES", "2")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, 2, cfg.Lesson.Lives)

	lc := cfg.LLMConfig()
	assert.Equal(t, "gemini", lc.Provider)
	assert.Equal(t, "g-env", lc.Gemini.APIKey)
}

func TestLoad_DiscoversProviderFromStandardEnv(t *testing.T) {
	isolate(t)
	t.Setenv("ANTHROPIC_API_KEY", "a-env")

	cfg, err := Load("")
	require.NoError(t, err)

	lc := cfg.LLMConfig()
	assert.Equal(t, "anthropic", lc.Provider)
	assert.Equal(t, "a-env", lc.Anthropic.APIKey)
	assert.NoError(t, lc.Validate())
}

func TestLoad_NoKeysDefaultsToGemini(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	lc := cfg.LLMConfig()
	assert.Equal(t, "gemini", lc.Provider)
	assert.ErrorContains(t, lc.Validate(), "LINGO_LLM_GEMINI_API_KEY")
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"provider", "llm:\n  provider: bard\n", "LLM.Provider"},
		{"attempts", "llm:\n  max_attempts: 0\n", "LLM.MaxAttempts"},
		{"lives", "lesson:\n  lives: 9\n", "Lesson.Lives"},
		{"tts", "speech:\n  tts: loud\n", "Speech.TTS"},
		{"level", "log:\n  level: chatty\n", "Log.Level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
