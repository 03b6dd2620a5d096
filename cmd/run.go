package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingo/internal/app"
	"github.com/abhisek/lingo/internal/lessongen"
	"github.com/abhisek/lingo/internal/llm"
	"github.com/abhisek/lingo/internal/speech"
	"github.com/abhisek/lingo/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogging(cfg)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closeLog()

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	llmCfg := cfg.LLMConfig()
	text, err := llm.NewProvider(ctx, llmCfg, eventRepo, logger)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	images, err := llm.NewImageProvider(ctx, llmCfg, eventRepo, logger)
	if err != nil {
		if !errors.Is(err, llm.ErrImagesUnsupported) {
			fmt.Fprintln(os.Stderr, "Image generation unavailable:", err)
		}
		logger.Info("lessons will run without pictures", "provider", llmCfg.Provider, "error", err)
		images = nil
	}

	speaker, listener := speech.Detect(cfg.SpeechConfig(), speech.Options{Logger: logger})
	logger.Info("starting lingo",
		"provider", llmCfg.Provider,
		"images", images != nil,
		"speech", speaker.Available(),
		"microphone", listener.Available(),
	)

	return app.Run(ctx, app.Options{
		Provider: lessongen.New(text, images, lessongen.DefaultConfig(), logger),
		Repo:     eventRepo,
		Speaker:  speaker,
		Listener: listener,
		Lives:    cfg.Lesson.Lives,
		Images:   cfg.Lesson.Images && images != nil,
		Logger:   logger,
	})
}
