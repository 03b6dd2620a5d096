package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/lessongen"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/ui/components"
	"github.com/abhisek/lingo/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	switch {
	case s.loading:
		return components.Loading(s.spinner.View(),
			fmt.Sprintf("Preparing your lesson on %s...", s.req.Topic.Title), width, height)
	case s.err != nil:
		return components.ErrorPanel("Could not load the lesson", s.err.Error(), s.errMenu, width, height)
	case s.confirmQuit:
		return s.renderQuitConfirm(width, height)
	case s.finished:
		return components.Loading(s.spinner.View(), "Tallying your score...", width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *Screen) renderQuitConfirm(width, height int) string {
	cw := min(components.ContentWidth(width), 44)
	body := theme.Incorrect.Render("Quit this lesson?") + "\n\n" +
		theme.Body.Render("Your progress in this lesson will be lost.") + "\n\n" +
		theme.Hint.Render("y quit · n keep going")
	return components.Centered(components.Card(body, cw), width, height)
}

func (s *Screen) renderQuestion(width, height int) string {
	cw := components.ContentWidth(width)
	inner := cw - 4

	var sections []string
	sections = append(sections, s.renderStatus(cw))

	q := s.progress.Current()
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(inner).Render(q.Prompt())

	var body string
	switch q := q.(type) {
	case *lessongen.ImageChoice:
		// Leave room for the status line, title, options and footer.
		picHeight := max(height-len(q.Options)-14, 3)
		body = s.renderPicture(inner, min(picHeight, 14)) + "\n\n" + s.options.View()
	case *lessongen.Sentence:
		phrase := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("“"+q.Phrase+"”") +
			"  " + theme.Hint.Render("s to hear it")
		body = phrase + "\n\n" + s.bank.View(inner)
		if s.listening {
			body += "\n" + lipgloss.NewStyle().Foreground(theme.Heart).Render("● rec")
		}
	}
	sections = append(sections, components.Card(title+"\n\n"+body, cw))

	if s.notice != "" {
		sections = append(sections, theme.Notice.Width(cw).Render(s.notice))
	}
	sections = append(sections, s.renderFeedback(cw))

	return components.Centered(strings.Join(sections, "\n"), width, height)
}

// renderStatus draws the progress bar with the remaining hearts beside it.
func (s *Screen) renderStatus(cw int) string {
	hearts := components.Hearts(s.progress.Lives(), session.MaxLives)
	counter := theme.Hint.Render(fmt.Sprintf("%d/%d", s.progress.Index()+1, s.progress.Total()))
	barWidth := cw - lipgloss.Width(hearts) - lipgloss.Width(counter) - 4
	bar := components.NewProgressBar("", s.progress.Fraction(), false, barWidth).View()
	return bar + "  " + counter + "  " + hearts
}

func (s *Screen) renderPicture(width, height int) string {
	ill, ok := s.images[s.progress.Index()]
	q, _ := s.progress.Current().(*lessongen.ImageChoice)

	placeholder := func(lines ...string) string {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Render(strings.Join(lines, "\n"))
	}

	switch {
	case !ok:
		return placeholder(theme.Hint.Render("🖼  " + q.ImagePrompt))
	case ill.loading:
		return placeholder(s.spinner.View() + " " + theme.Subtitle.Render("Drawing the picture..."))
	case ill.err != nil:
		return placeholder(
			theme.Notice.Render("Picture unavailable."),
			theme.Hint.Render(q.ImagePrompt),
		)
	}

	pic, err := ill.picture.Render(width, height)
	if err != nil {
		return placeholder(theme.Hint.Render(q.ImagePrompt))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, pic)
}

// renderFeedback draws the verdict after a check and the main button.
func (s *Screen) renderFeedback(cw int) string {
	switch s.progress.Status() {
	case session.StatusCorrect:
		return theme.Correct.Render("✓ Correct!") + "\n\n" + components.NewButton("Continue", true).View()
	case session.StatusIncorrect:
		line := theme.Incorrect.Render("✗ Not quite.") + " " +
			theme.Body.Render("Correct answer: "+solution(s.progress.Current()))
		if s.progress.Lives() == 0 {
			line += "\n" + theme.Hint.Render("You are out of hearts.")
		}
		return lipgloss.NewStyle().Width(cw).Render(line) + "\n\n" + components.NewButton("Continue", true).View()
	}
	ready := !session.Empty(s.progress.Selected())
	return components.NewButton("Check", ready).View()
}

func solution(q lessongen.Question) string {
	switch q := q.(type) {
	case *lessongen.ImageChoice:
		return q.Correct
	case *lessongen.Sentence:
		return q.Solution()
	}
	return ""
}
