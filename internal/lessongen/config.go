package lessongen

// Config controls the behavior of the Generator.
type Config struct {
	// Validators run on every generated question in order. A question
	// failing any of them is dropped from the lesson.
	Validators []Validator

	// ImageChoiceCount and SentenceCount set the requested mix.
	ImageChoiceCount int
	SentenceCount    int

	// MinQuestions is the smallest lesson accepted after validation.
	MinQuestions int

	PlanMaxTokens   int
	LessonMaxTokens int
	Temperature     float64

	// ImageStyle is appended to every illustration prompt.
	ImageStyle       string
	ImageAspectRatio string
}

// DefaultConfig returns the standard validator chain and lesson mix.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ChoiceValidator{},
			&SentenceValidator{},
		},
		ImageChoiceCount: 3,
		SentenceCount:    2,
		MinQuestions:     3,
		PlanMaxTokens:    1024,
		LessonMaxTokens:  2048,
		Temperature:      0.8,
		ImageStyle: "cute simple vector illustration, duolingo style, plain background. " +
			"IMPORTANT: The image must not contain any text, words, letters, or characters. Absolutely no text.",
		ImageAspectRatio: "1:1",
	}
}
