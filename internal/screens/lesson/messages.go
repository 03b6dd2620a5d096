package lesson

import (
	"github.com/abhisek/lingo/internal/lessongen"
	"github.com/abhisek/lingo/internal/screen"
)

// lessonLoadedMsg carries the result of FetchLesson.
type lessonLoadedMsg struct {
	screen.Epoch
	Lesson *lessongen.Lesson
	Err    error
}

// imageLoadedMsg carries the illustration for question Index.
type imageLoadedMsg struct {
	screen.Epoch
	Index int
	Image *lessongen.Image
	Err   error
}

// spokenMsg is sent when playback ends.
type spokenMsg struct {
	screen.Epoch
	Err error
}

// heardMsg carries the transcript of capture number Capture.
type heardMsg struct {
	screen.Epoch
	Capture    int
	Transcript string
	Err        error
}

// retryMsg re-issues the lesson fetch after a failure.
type retryMsg struct{}
