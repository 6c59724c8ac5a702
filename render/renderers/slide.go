package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"quizdeck/constants"
	"quizdeck/engine"
	"quizdeck/render"
)

// SlideRenderer draws slide content: title and body for content
// slides; question, choice list and post-resolution reveal for quiz
// slides.
type SlideRenderer struct{}

// NewSlideRenderer creates a slide renderer
func NewSlideRenderer() *SlideRenderer {
	return &SlideRenderer{}
}

// Render implements SystemRenderer
func (s *SlideRenderer) Render(ctx render.Context, buf *render.Buffer) {
	w, _ := buf.Size()
	contentWidth := w - 2*constants.SlideMarginX
	if contentWidth < 10 {
		contentWidth = w - 2
	}

	y := constants.SlideMarginY + constants.TimerBarHeight + 1

	slide := ctx.Slide
	if slide.Title != "" {
		titleStyle := tcell.StyleDefault.
			Background(render.RgbBackground).
			Foreground(render.RgbAccent).
			Bold(true)
		buf.SetString(centerX(w, slide.Title), y, slide.Title, titleStyle)
		y += 2
	}

	bodyStyle := tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbForeground)
	for _, line := range slide.Body {
		if line == "" {
			y++
			continue
		}
		for _, wrapped := range wrapText(line, contentWidth) {
			buf.SetString(constants.SlideMarginX, y, wrapped, bodyStyle)
			y++
		}
	}
	if len(slide.Body) > 0 {
		y++
	}

	if slide.IsQuiz() {
		s.renderQuiz(ctx, buf, y, contentWidth)
	}
}

func (s *SlideRenderer) renderQuiz(ctx render.Context, buf *render.Buffer, y, contentWidth int) {
	q := ctx.Slide.Quiz
	base := tcell.StyleDefault.Background(render.RgbBackground)

	questionStyle := base.Foreground(render.RgbForeground).Bold(true)
	for _, line := range wrapText(q.Question, contentWidth) {
		buf.SetString(constants.SlideMarginX, y, line, questionStyle)
		y++
	}
	y++

	resolved := ctx.Resolution != nil
	for i, choice := range q.Choices {
		prefix := "  "
		style := base.Foreground(render.RgbForeground)

		switch {
		case resolved && i == q.Correct:
			prefix = "✓ "
			style = base.Foreground(render.RgbCorrect).Bold(true)
		case resolved && i == ctx.Resolution.Choice:
			// Chosen but not correct
			prefix = "✗ "
			style = base.Foreground(render.RgbIncorrect)
		case resolved:
			style = base.Foreground(render.RgbDim)
		case i == ctx.Selection:
			prefix = "> "
			style = base.Foreground(tcell.ColorBlack).Background(render.RgbAccent)
		}

		label := fmt.Sprintf("%s%d. %s", prefix, i+1, choice)
		buf.SetString(constants.SlideMarginX, y, label, style)
		y++
	}
	y++

	if resolved {
		s.renderOutcome(ctx, buf, y, contentWidth)
	}
}

func (s *SlideRenderer) renderOutcome(ctx render.Context, buf *render.Buffer, y, contentWidth int) {
	base := tcell.StyleDefault.Background(render.RgbBackground)
	res := ctx.Resolution

	var msg string
	var style tcell.Style
	switch res.Outcome {
	case engine.OutcomeCorrect:
		msg = fmt.Sprintf("Correct! +%d points", res.Points)
		style = base.Foreground(render.RgbCorrect).Bold(true)
	case engine.OutcomeIncorrect:
		msg = "Not quite."
		style = base.Foreground(render.RgbIncorrect).Bold(true)
	case engine.OutcomeTimedOut:
		msg = "Time's up!"
		style = base.Foreground(render.RgbWarning).Bold(true)
	case engine.OutcomeSkipped:
		msg = "Skipped."
		style = base.Foreground(render.RgbDim)
	}
	buf.SetString(constants.SlideMarginX, y, msg, style)
	y += 2

	if fact := ctx.Slide.Quiz.FunFact; fact != "" {
		factStyle := base.Foreground(render.RgbDim).Italic(true)
		for _, line := range wrapText(fact, contentWidth) {
			buf.SetString(constants.SlideMarginX, y, line, factStyle)
			y++
		}
	}
}
