package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"missing program", fmt.Errorf("arecord: %w", exec.ErrNotFound), KindUnsupported},
		{"permission", errors.New("arecord: exit status 1: audio open error: Permission denied"), KindPermissionDenied},
		{"other", errors.New("transcribe: 500 internal error"), KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify("listen", tt.err)
			var se *Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.want, se.Kind)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestClassify_PassThrough(t *testing.T) {
	assert.NoError(t, Classify("listen", nil))
	assert.ErrorIs(t, Classify("listen", context.Canceled), context.Canceled)

	orig := &Error{Kind: KindPermissionDenied, Op: "listen"}
	assert.Same(t, orig, Classify("speak", orig).(*Error))
}

func TestError_Sentinels(t *testing.T) {
	assert.ErrorIs(t, unsupported("speak"), ErrUnsupported)
	assert.NotErrorIs(t, unsupported("speak"), ErrPermissionDenied)

	denied := &Error{Kind: KindPermissionDenied, Op: "listen"}
	assert.ErrorIs(t, denied, ErrPermissionDenied)
	assert.Contains(t, denied.Error(), "permission-denied")
}
