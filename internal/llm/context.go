package llm

import "context"

// Purpose labels every model call in the event log so usage can be broken
// down by what the call produced.
type Purpose string

const (
	PurposeLessonPlan Purpose = "lesson-plan"
	PurposeLesson     Purpose = "lesson"
	PurposeImage      Purpose = "image"

	// PurposeUnknown marks calls made without a label.
	PurposeUnknown Purpose = "unknown"
)

type purposeKey struct{}

// WithPurpose attaches a purpose label to the context.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok && p != "" {
		return p
	}
	return PurposeUnknown
}
