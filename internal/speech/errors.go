package speech

import (
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"
)

var (
	// ErrUnsupported matches errors of KindUnsupported.
	ErrUnsupported = errors.New("speech is not supported on this system")
	// ErrPermissionDenied matches errors of KindPermissionDenied.
	ErrPermissionDenied = errors.New("microphone permission denied")
)

// Kind classifies speech failures for the user-facing notice.
type Kind int

const (
	KindOther Kind = iota
	KindUnsupported
	KindPermissionDenied
)

func (k Kind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindPermissionDenied:
		return "permission-denied"
	default:
		return "other"
	}
}

// Error is a classified speech failure.
type Error struct {
	Kind Kind
	Op   string // "speak" or "listen"
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op + " " + e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnsupported:
		return e.Kind == KindUnsupported
	case ErrPermissionDenied:
		return e.Kind == KindPermissionDenied
	}
	return false
}

// Classify maps a raw failure from an engine, recorder or API into an
// *Error. nil, context cancellation and already classified errors
// are returned unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	kind := KindOther
	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, ErrUnsupported):
		kind = KindUnsupported
	case errors.Is(err, fs.ErrPermission), errors.Is(err, ErrPermissionDenied),
		strings.Contains(msg, "permission denied"), strings.Contains(msg, "not permitted"):
		kind = KindPermissionDenied
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

func unsupported(op string) error {
	return &Error{Kind: KindUnsupported, Op: op}
}
