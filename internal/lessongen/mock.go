package lessongen

import (
	"context"
	"sync"

	"github.com/abhisek/lingo/internal/language"
)

// MockProvider is a Provider returning fixed content, for tests and
// offline previews.
type MockProvider struct {
	mu sync.Mutex

	Plan      []Topic
	PlanErr   error
	Lesson    *Lesson
	LessonErr error
	Image     *Image
	ImageErr  error

	PlanCalls   int
	LessonCalls []LessonRequest
	ImageCalls  []string
}

func (m *MockProvider) FetchLessonPlan(_ context.Context, _ language.Language, d Difficulty) ([]Topic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlanCalls++
	if m.PlanErr != nil {
		return nil, &GenerationError{Stage: "lesson-plan", Err: m.PlanErr}
	}
	plan := m.Plan
	if n := d.TopicCount(); len(plan) > n {
		plan = plan[:n]
	}
	return append([]Topic(nil), plan...), nil
}

func (m *MockProvider) FetchLesson(_ context.Context, req LessonRequest) (*Lesson, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LessonCalls = append(m.LessonCalls, req)
	if m.LessonErr != nil {
		return nil, &GenerationError{Stage: "lesson", Err: m.LessonErr}
	}
	return m.Lesson, nil
}

func (m *MockProvider) FetchImage(_ context.Context, prompt string) (*Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ImageCalls = append(m.ImageCalls, prompt)
	if m.ImageErr != nil {
		return nil, &ImageError{Prompt: prompt, Err: m.ImageErr}
	}
	if m.Image == nil {
		return nil, &ImageError{Prompt: prompt, Err: ErrNoImages}
	}
	return m.Image, nil
}

// SampleLesson returns a French beginner lesson with three image-choice
// and two sentence-construction questions.
func SampleLesson() *Lesson {
	return &Lesson{
		Title: "Food",
		Questions: []Question{
			&ImageChoice{Title: "What is this?", Word: "pomme", ImagePrompt: "a red apple",
				Options: []string{"pomme", "poire", "pain", "lait"}, Correct: "pomme"},
			&ImageChoice{Title: "What is this?", Word: "pain", ImagePrompt: "a loaf of bread",
				Options: []string{"fromage", "pain", "eau", "œuf"}, Correct: "pain"},
			&Sentence{Title: "Write this in French:", Phrase: "I eat an apple",
				CorrectOrder: []string{"Je", "mange", "une", "pomme"},
				WordBank:     []string{"mange", "pomme", "Je", "bois", "une", "le"}},
			&ImageChoice{Title: "What is this?", Word: "fromage", ImagePrompt: "a wedge of cheese",
				Options: []string{"lait", "beurre", "fromage", "sel"}, Correct: "fromage"},
			&Sentence{Title: "Write this in French:", Phrase: "The bread is good",
				CorrectOrder: []string{"Le", "pain", "est", "bon"},
				WordBank:     []string{"bon", "Le", "est", "pain", "la", "sont"}},
		},
	}
}
