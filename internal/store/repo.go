package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Purpose string    // LLM events only
	Target  string    // lesson events only: target language name
	From    time.Time // created_at >= From
	To      time.Time // created_at <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token counts for a purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LessonEventData records a finished (or abandoned-by-hearts) lesson.
type LessonEventData struct {
	RunID          string
	NativeLanguage string
	TargetLanguage string
	Difficulty     string
	Topic          string
	Level          int
	Score          int
	Total          int
	Answered       int
	LivesLeft      int
	EndedEarly     bool
}

// LessonEvent is a stored lesson result.
type LessonEvent struct {
	ID        int
	Timestamp time.Time
	LessonEventData
}

// AnswerEventData records one checked answer.
type AnswerEventData struct {
	RunID         string
	QuestionIndex int
	Kind          string
	Prompt        string
	Expected      string
	Given         string
	Correct       bool
}

// LanguageStats summarizes lesson results for one target language.
type LanguageStats struct {
	TargetLanguage string
	Lessons        int
	Score          int
	Total          int
	Perfect        int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// AppendLesson records a completed lesson.
	AppendLesson(ctx context.Context, data LessonEventData) error

	// AppendAnswer records a checked answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// QueryLessons returns lesson events, newest first.
	QueryLessons(ctx context.Context, opts QueryOpts) ([]LessonEvent, error)

	// QueryAnswers returns the answers of one lesson run in question order.
	QueryAnswers(ctx context.Context, runID string) ([]AnswerEventData, error)

	// StatsByLanguage aggregates lesson results per target language.
	StatsByLanguage(ctx context.Context) ([]LanguageStats, error)

	// Purge deletes all recorded events.
	Purge(ctx context.Context) error
}
