package llm

import (
	"errors"
	"testing"
	"time"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("429")
	tests := []struct {
		err  error
		want string
	}{
		{&ErrRateLimit{Err: cause}, "rate limited: 429"},
		{&ErrRateLimit{RetryAfter: 3 * time.Second, Err: cause}, "rate limited (retry after 3s): 429"},
		{&ErrProviderUnavailable{}, "model provider unavailable"},
		{&ErrNoImage{Model: "dall-e-3"}, "dall-e-3 returned no image"},
		{&ErrNoImage{Model: "imagen-4.0-generate-001", Reason: "filtered"}, "imagen-4.0-generate-001 returned no image: filtered"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	if !errors.Is(&ErrRateLimit{Err: cause}, cause) {
		t.Error("ErrRateLimit does not unwrap to its cause")
	}
}
