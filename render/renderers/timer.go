package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"quizdeck/constants"
	"quizdeck/engine"
	"quizdeck/render"
)

// TimerRenderer draws the countdown bar and the current point value at
// the top of quiz slides. Bar color slides from green to red as time
// runs out.
type TimerRenderer struct{}

// NewTimerRenderer creates a timer renderer
func NewTimerRenderer() *TimerRenderer {
	return &TimerRenderer{}
}

// Render implements SystemRenderer
func (t *TimerRenderer) Render(ctx render.Context, buf *render.Buffer) {
	if !ctx.HasQuestion {
		return
	}

	w, _ := buf.Size()
	y := constants.SlideMarginY
	base := tcell.StyleDefault.Background(render.RgbBackground)

	if ctx.Phase.Terminal() {
		return
	}

	frac := 1.0
	if ctx.Limit > 0 {
		frac = float64(ctx.Remaining) / float64(ctx.Limit)
	}

	var label string
	switch ctx.Phase {
	case engine.PhasePreCountdown:
		label = fmt.Sprintf("Get ready: %d points", ctx.PointsNow)
	case engine.PhaseCountdown:
		label = fmt.Sprintf("%2.0fs / %d points", ctx.Remaining.Seconds(), ctx.PointsNow)
	}

	barColor := render.LerpColor(render.RgbIncorrect, render.RgbCorrect, frac)
	filled := int(frac * float64(w))

	for x := 0; x < w; x++ {
		style := base.Foreground(render.RgbDim)
		r := '░'
		if x < filled {
			style = base.Foreground(barColor)
			r = '█'
		}
		buf.Set(x, y, r, style)
	}

	labelStyle := base.Foreground(render.RgbForeground).Bold(true)
	buf.SetString(centerX(w, label), y+1, label, labelStyle)
}
