package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendLesson(ctx context.Context, data LessonEventData) error {
	query, args := r.b.Insert(lessonEventsTable).
		Columns("created_at", "run_id", "native_language", "target_language", "difficulty", "topic",
			"level", "score", "total", "answered", "lives_left", "ended_early").
		Values(time.Now().UTC(), data.RunID, data.NativeLanguage, data.TargetLanguage, data.Difficulty, data.Topic,
			data.Level, data.Score, data.Total, data.Answered, data.LivesLeft, data.EndedEarly).
		Query()
	if err := r.exec(ctx, query, args); err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	query, args := r.b.Insert(answerEventsTable).
		Columns("created_at", "run_id", "question_index", "kind", "prompt", "expected", "given", "correct").
		Values(time.Now().UTC(), data.RunID, data.QuestionIndex, data.Kind, data.Prompt, data.Expected, data.Given, data.Correct).
		Query()
	if err := r.exec(ctx, query, args); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLessons(ctx context.Context, opts QueryOpts) ([]LessonEvent, error) {
	t := r.b.Table(lessonEventsTable)
	sel := r.b.Select(
		t.C("id"), t.C("created_at"), t.C("run_id"), t.C("native_language"), t.C("target_language"),
		t.C("difficulty"), t.C("topic"), t.C("level"), t.C("score"), t.C("total"),
		t.C("answered"), t.C("lives_left"), t.C("ended_early"),
	).From(t)
	if opts.Target != "" {
		sel.Where(entsql.EQ(t.C("target_language"), opts.Target))
	}
	applyTimeRange(sel, t, opts)
	sel.OrderBy(entsql.Desc(t.C("id")))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lesson events: %w", err)
	}
	defer rows.Close()

	var out []LessonEvent
	for rows.Next() {
		var e LessonEvent
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.RunID, &e.NativeLanguage, &e.TargetLanguage,
			&e.Difficulty, &e.Topic, &e.Level, &e.Score, &e.Total,
			&e.Answered, &e.LivesLeft, &e.EndedEarly); err != nil {
			return nil, fmt.Errorf("scan lesson event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) QueryAnswers(ctx context.Context, runID string) ([]AnswerEventData, error) {
	t := r.b.Table(answerEventsTable)
	sel := r.b.Select(
		t.C("run_id"), t.C("question_index"), t.C("kind"), t.C("prompt"),
		t.C("expected"), t.C("given"), t.C("correct"),
	).From(t).
		Where(entsql.EQ(t.C("run_id"), runID)).
		OrderBy(t.C("question_index"), t.C("id"))

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEventData
	for rows.Next() {
		var a AnswerEventData
		if err := rows.Scan(&a.RunID, &a.QuestionIndex, &a.Kind, &a.Prompt,
			&a.Expected, &a.Given, &a.Correct); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *eventRepo) StatsByLanguage(ctx context.Context) ([]LanguageStats, error) {
	t := r.b.Table(lessonEventsTable)
	sel := r.b.Select(
		t.C("target_language"),
		entsql.Count("*"),
		entsql.Sum(t.C("score")),
		entsql.Sum(t.C("total")),
		"SUM(CASE WHEN "+t.C("score")+" = "+t.C("total")+" THEN 1 ELSE 0 END)",
	).From(t).GroupBy(t.C("target_language")).OrderBy(t.C("target_language"))

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query language stats: %w", err)
	}
	defer rows.Close()

	var out []LanguageStats
	for rows.Next() {
		var s LanguageStats
		if err := rows.Scan(&s.TargetLanguage, &s.Lessons, &s.Score, &s.Total, &s.Perfect); err != nil {
			return nil, fmt.Errorf("scan language stats: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *eventRepo) Purge(ctx context.Context) error {
	for _, table := range []string{answerEventsTable, lessonEventsTable, llmRequestEventsTable} {
		query, args := r.b.Delete(table).Query()
		if err := r.exec(ctx, query, args); err != nil {
			return fmt.Errorf("purge %s: %w", table, err)
		}
	}
	return nil
}
