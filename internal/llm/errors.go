package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrImagesUnsupported is returned when the configured provider has no
// image generation model.
var ErrImagesUnsupported = errors.New("image generation not supported by provider")

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter <= 0 {
		return fmt.Sprintf("rate limited: %v", e.Err)
	}
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned a lesson or plan that
// does not conform to the requested schema. Content keeps the raw payload
// for the event log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model provider unavailable: %v", e.Err)
	}
	return "model provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was cut off at MaxTokens.
// It is not retried: the same budget truncates the same lesson again.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model response truncated: max tokens exceeded"
}

// ErrNoImage indicates an image request completed without a picture,
// usually because the provider's safety filter dropped it. Reason carries
// the provider's explanation when one was given.
type ErrNoImage struct {
	Model  string
	Reason string
}

func (e *ErrNoImage) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s returned no image", e.Model)
	}
	return fmt.Sprintf("%s returned no image: %s", e.Model, e.Reason)
}
