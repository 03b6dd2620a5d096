package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/lingo/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	provider  string
	eventRepo store.EventRepo
	logger    *slog.Logger
}

// WithLogging wraps a Provider with event logging. A nil repo disables
// event recording; a nil logger uses slog.Default().
func WithLogging(p Provider, provider string, repo store.EventRepo, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProvider{inner: p, provider: provider, eventRepo: repo, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     string(purpose),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}

	if err != nil {
		data.ErrorMessage = err.Error()
		l.logger.Warn("llm request failed", "purpose", purpose, "model", data.Model, "error", err)
	} else {
		l.logger.Debug("llm request", "purpose", purpose, "model", data.Model,
			"latency_ms", data.LatencyMs, "input_tokens", data.InputTokens, "output_tokens", data.OutputTokens)
	}

	recordEvent(ctx, l.eventRepo, l.logger, data)
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// recordEvent appends the event without failing the request. The caller's
// context may already be cancelled when a screen was left mid-request, so
// the write uses a detached context.
func recordEvent(ctx context.Context, repo store.EventRepo, logger *slog.Logger, data store.LLMRequestEventData) {
	if repo == nil {
		return
	}
	if err := repo.AppendLLMRequest(context.WithoutCancel(ctx), data); err != nil {
		logger.Warn("failed to log LLM request event", "error", err)
	}
}

// LoggingImageProvider records image generations the same way.
type LoggingImageProvider struct {
	inner     ImageProvider
	provider  string
	eventRepo store.EventRepo
	logger    *slog.Logger
}

// WithImageLogging wraps an ImageProvider with event logging.
func WithImageLogging(p ImageProvider, provider string, repo store.EventRepo, logger *slog.Logger) ImageProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingImageProvider{inner: p, provider: provider, eventRepo: repo, logger: logger}
}

func (l *LoggingImageProvider) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error) {
	start := time.Now()
	resp, err := l.inner.GenerateImage(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     string(PurposeFrom(ctx)),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: "[image]\n" + req.Prompt,
	}
	if resp != nil {
		data.ResponseBody = fmt.Sprintf("%s, %d bytes", resp.MIMEType, len(resp.Data))
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		l.logger.Warn("image request failed", "model", data.Model, "error", err)
	}

	recordEvent(ctx, l.eventRepo, l.logger, data)
	return resp, err
}

func (l *LoggingImageProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
			b.Write(schemaDef)
			b.WriteString("\n")
		}
	}

	return b.String()
}
