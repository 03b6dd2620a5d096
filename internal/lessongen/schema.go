package lessongen

import "github.com/abhisek/lingo/internal/llm"

// planSchemas holds one plan schema per difficulty, built once so the
// compiled form is cached by the validator.
var planSchemas = map[Difficulty]*llm.Schema{
	Beginner:     newPlanSchema(Beginner.TopicCount()),
	Intermediary: newPlanSchema(Intermediary.TopicCount()),
	Expert:       newPlanSchema(Expert.TopicCount()),
}

// PlanSchemaFor returns the lesson-plan schema for d, which requires
// exactly d.TopicCount() topics. It returns nil for an unknown difficulty.
func PlanSchemaFor(d Difficulty) *llm.Schema {
	return planSchemas[d]
}

func newPlanSchema(count int) *llm.Schema {
	return &llm.Schema{
		Name:        "lesson-plan",
		Description: "An ordered list of lesson topics for a language course",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topics": map[string]any{
					"type":     "array",
					"minItems": count,
					"maxItems": count,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"title": map[string]any{
								"type":        "string",
								"description": "A concise topic name, e.g. \"Food\" or \"Greetings\"",
							},
							"level": map[string]any{
								"type":        "integer",
								"minimum":     1,
								"description": "Sequential level number starting from 1",
							},
							"icon": map[string]any{
								"type":        "string",
								"description": "A single emoji representing the topic",
							},
						},
						"required":             []any{"title", "level", "icon"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"topics"},
			"additionalProperties": false,
		},
	}
}

// LessonSchema defines the JSON schema for lesson responses. Both question
// variants share one object shape; fields of the other variant are left
// empty and the generator converts each entry into its variant type.
var LessonSchema = &llm.Schema{
	Name:        "language-lesson",
	Description: "A short language lesson with image-choice and sentence-construction questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type": "string",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{string(KindImageChoice), string(KindSentence)},
						},
						"question_title": map[string]any{
							"type":        "string",
							"description": "The instruction in the learner's native language",
						},
						"question_text": map[string]any{
							"type":        "string",
							"description": "image-choice: the target-language word being taught. Empty otherwise.",
						},
						"image_prompt": map[string]any{
							"type":        "string",
							"description": "image-choice: an illustration prompt with no text in the picture. Empty otherwise.",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "image-choice: 4 target-language options. Empty otherwise.",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "image-choice: the correct option. Empty otherwise.",
						},
						"phrase_to_translate": map[string]any{
							"type":        "string",
							"description": "sentence-construction: a phrase in the native language. Empty otherwise.",
						},
						"correct_answer_in_order": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "sentence-construction: the translation as words in order. Empty otherwise.",
						},
						"word_bank": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "sentence-construction: the correct words plus 3-4 distractors, shuffled. Empty otherwise.",
						},
					},
					"required": []any{
						"type", "question_title", "question_text", "image_prompt", "options",
						"correct_answer", "phrase_to_translate", "correct_answer_in_order", "word_bank",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}
