package lessongen

import "fmt"

// GenerationError means a lesson plan or lesson could not be produced:
// the provider failed or returned structurally invalid data.
type GenerationError struct {
	Stage string // "lesson-plan" or "lesson"
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ImageError means an illustration could not be produced. Callers render
// a notice in its place and keep the question answerable.
type ImageError struct {
	Prompt string
	Err    error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("generate image: %v", e.Err)
}

func (e *ImageError) Unwrap() error { return e.Err }
