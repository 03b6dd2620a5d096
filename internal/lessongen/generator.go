package lessongen

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/abhisek/lingo/internal/language"
	"github.com/abhisek/lingo/internal/llm"
)

// ErrNoImages is wrapped in an ImageError when no image provider is
// configured.
var ErrNoImages = errors.New("no image provider configured")

// Generator implements Provider on top of an LLM for text and an optional
// image model.
type Generator struct {
	text   llm.Provider
	images llm.ImageProvider
	config Config
	logger *slog.Logger
}

// New creates a Generator. images may be nil, in which case every
// FetchImage call fails with an ImageError.
func New(text llm.Provider, images llm.ImageProvider, cfg Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{text: text, images: images, config: cfg, logger: logger}
}

type planOutput struct {
	Topics []struct {
		Title string `json:"title"`
		Level int    `json:"level"`
		Icon  string `json:"icon"`
	} `json:"topics"`
}

// FetchLessonPlan asks the LLM for d.TopicCount() topics; the request
// schema pins the count. Extra topics from a lenient provider are dropped,
// and a plan with no usable topic is a GenerationError.
func (g *Generator) FetchLessonPlan(ctx context.Context, target language.Language, d Difficulty) ([]Topic, error) {
	if !d.Valid() {
		return nil, &GenerationError{Stage: "lesson-plan", Err: fmt.Errorf("unknown difficulty %q", d)}
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeLessonPlan)

	resp, err := g.text.Generate(ctx, llm.Request{
		System:      planSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildPlanMessage(target.Name, d)}},
		Schema:      PlanSchemaFor(d),
		MaxTokens:   g.config.PlanMaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, &GenerationError{Stage: "lesson-plan", Err: err}
	}

	var raw planOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Stage: "lesson-plan", Err: fmt.Errorf("parse response: %w", err)}
	}

	topics := make([]Topic, 0, len(raw.Topics))
	for _, t := range raw.Topics {
		title := strings.TrimSpace(t.Title)
		if title == "" {
			continue
		}
		topics = append(topics, Topic{Title: title, Level: t.Level, Icon: strings.TrimSpace(t.Icon)})
	}
	if len(topics) == 0 {
		return nil, &GenerationError{Stage: "lesson-plan", Err: errors.New("no topics returned")}
	}

	slices.SortStableFunc(topics, func(a, b Topic) int { return cmp.Compare(a.Level, b.Level) })
	if len(topics) > d.TopicCount() {
		topics = topics[:d.TopicCount()]
	}
	for i := range topics {
		if topics[i].Level < 1 {
			topics[i].Level = i + 1
		}
	}
	return topics, nil
}

type questionOutput struct {
	Type                 string   `json:"type"`
	QuestionTitle        string   `json:"question_title"`
	QuestionText         string   `json:"question_text"`
	ImagePrompt          string   `json:"image_prompt"`
	Options              []string `json:"options"`
	CorrectAnswer        string   `json:"correct_answer"`
	PhraseToTranslate    string   `json:"phrase_to_translate"`
	CorrectAnswerInOrder []string `json:"correct_answer_in_order"`
	WordBank             []string `json:"word_bank"`
}

type lessonOutput struct {
	Title     string           `json:"title"`
	Questions []questionOutput `json:"questions"`
}

// FetchLesson asks the LLM for a lesson, converts each entry into its
// question variant, drops entries failing validation and repairs word
// banks. Fewer than Config.MinQuestions surviving questions is a
// GenerationError.
func (g *Generator) FetchLesson(ctx context.Context, req LessonRequest) (*Lesson, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeLesson)

	resp, err := g.text.Generate(ctx, llm.Request{
		System:      lessonSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildLessonMessage(req, g.config)}},
		Schema:      LessonSchema,
		MaxTokens:   g.config.LessonMaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, &GenerationError{Stage: "lesson", Err: err}
	}

	var raw lessonOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Stage: "lesson", Err: fmt.Errorf("parse response: %w", err)}
	}

	lesson := &Lesson{Title: strings.TrimSpace(raw.Title)}
	if lesson.Title == "" {
		lesson.Title = req.Topic.Title
	}

	for i, qo := range raw.Questions {
		q, err := convertQuestion(qo)
		if err != nil {
			g.logger.Debug("dropping generated question", "index", i, "error", err)
			continue
		}
		if verr := g.validate(q); verr != nil {
			g.logger.Debug("dropping generated question", "index", i, "error", verr)
			continue
		}
		lesson.Questions = append(lesson.Questions, q)
	}

	if lesson.Len() < g.config.MinQuestions {
		return nil, &GenerationError{
			Stage: "lesson",
			Err:   fmt.Errorf("lesson has too few questions: %d of %d usable", lesson.Len(), len(raw.Questions)),
		}
	}
	return lesson, nil
}

func (g *Generator) validate(q Question) *ValidationError {
	for _, v := range g.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return verr
		}
	}
	return nil
}

func convertQuestion(qo questionOutput) (Question, error) {
	switch QuestionKind(qo.Type) {
	case KindImageChoice:
		word := strings.TrimSpace(qo.QuestionText)
		if word == "" {
			word = qo.CorrectAnswer
		}
		prompt := strings.TrimSpace(qo.ImagePrompt)
		if prompt == "" {
			prompt = word
		}
		return &ImageChoice{
			Title:       strings.TrimSpace(qo.QuestionTitle),
			Word:        word,
			ImagePrompt: prompt,
			Options:     qo.Options,
			Correct:     qo.CorrectAnswer,
		}, nil
	case KindSentence:
		return &Sentence{
			Title:        strings.TrimSpace(qo.QuestionTitle),
			Phrase:       strings.TrimSpace(qo.PhraseToTranslate),
			CorrectOrder: qo.CorrectAnswerInOrder,
			WordBank:     RepairWordBank(qo.CorrectAnswerInOrder, qo.WordBank),
		}, nil
	default:
		return nil, fmt.Errorf("unknown question type %q", qo.Type)
	}
}

// FetchImage renders the illustration for an image-choice prompt.
func (g *Generator) FetchImage(ctx context.Context, prompt string) (*Image, error) {
	if g.images == nil {
		return nil, &ImageError{Prompt: prompt, Err: ErrNoImages}
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeImage)

	resp, err := g.images.GenerateImage(ctx, llm.ImageRequest{
		Prompt:      buildImagePrompt(prompt, g.config.ImageStyle),
		AspectRatio: g.config.ImageAspectRatio,
	})
	if err != nil {
		return nil, &ImageError{Prompt: prompt, Err: err}
	}
	if len(resp.Data) == 0 {
		return nil, &ImageError{Prompt: prompt, Err: errors.New("empty image")}
	}
	return &Image{Data: resp.Data, MIMEType: resp.MIMEType}, nil
}

var _ Provider = (*Generator)(nil)
