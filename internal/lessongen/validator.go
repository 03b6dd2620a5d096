package lessongen

import (
	"fmt"
	"strings"
)

// Validator checks a generated question. Implementations are stateless.
type Validator interface {
	// Name returns a short identifier for logging, e.g. "structural".
	Name() string

	// Validate returns nil if the question passes.
	Validate(q Question) *ValidationError
}

// ValidationError describes why a question was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator rejects questions with empty required fields.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}

	if strings.TrimSpace(q.Prompt()) == "" {
		return fail("question title is empty")
	}

	switch q := q.(type) {
	case *ImageChoice:
		if strings.TrimSpace(q.Correct) == "" {
			return fail("correct answer is empty")
		}
		for i, o := range q.Options {
			if strings.TrimSpace(o) == "" {
				return fail(fmt.Sprintf("option %d is empty", i+1))
			}
		}
	case *Sentence:
		if strings.TrimSpace(q.Phrase) == "" {
			return fail("phrase to translate is empty")
		}
		if len(q.CorrectOrder) == 0 {
			return fail("correct answer has no words")
		}
	default:
		return fail(fmt.Sprintf("unknown question type %T", q))
	}
	return nil
}

// ChoiceValidator requires exactly four distinct options, one of which is
// the correct answer.
type ChoiceValidator struct{}

func (v *ChoiceValidator) Name() string { return "choice" }

func (v *ChoiceValidator) Validate(q Question) *ValidationError {
	c, ok := q.(*ImageChoice)
	if !ok {
		return nil
	}
	if len(c.Options) != 4 {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("expected 4 options, got %d", len(c.Options))}
	}

	seen := make(map[string]bool, len(c.Options))
	found := false
	for _, o := range c.Options {
		if seen[o] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("duplicate option %q", o)}
		}
		seen[o] = true
		if o == c.Correct {
			found = true
		}
	}
	if !found {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("correct answer %q is not among the options", c.Correct)}
	}
	return nil
}

// SentenceValidator rejects blank words in the expected translation.
// Missing bank words are repaired rather than rejected.
type SentenceValidator struct{}

func (v *SentenceValidator) Name() string { return "sentence" }

func (v *SentenceValidator) Validate(q Question) *ValidationError {
	s, ok := q.(*Sentence)
	if !ok {
		return nil
	}
	for i, w := range s.CorrectOrder {
		if strings.TrimSpace(w) == "" {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("word %d of the answer is blank", i+1)}
		}
	}
	return nil
}
