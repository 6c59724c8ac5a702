package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"quizdeck/constants"
	"quizdeck/render"
)

// ProgressRenderer draws deck progress above the status bar
type ProgressRenderer struct{}

// NewProgressRenderer creates a progress renderer
func NewProgressRenderer() *ProgressRenderer {
	return &ProgressRenderer{}
}

// Render implements SystemRenderer
func (p *ProgressRenderer) Render(ctx render.Context, buf *render.Buffer) {
	w, h := buf.Size()
	y := h - constants.StatusBarHeight - 1
	base := tcell.StyleDefault.Background(render.RgbBackground)

	label := fmt.Sprintf(" %d/%d ", ctx.SlideIndex+1, ctx.SlideCount)
	barWidth := w - len(label)
	if barWidth < 1 {
		return
	}

	filled := 0
	if ctx.SlideCount > 1 {
		filled = barWidth * ctx.SlideIndex / (ctx.SlideCount - 1)
	}

	for x := 0; x < barWidth; x++ {
		r := '─'
		style := base.Foreground(render.RgbDim)
		if x <= filled {
			r = '━'
			style = base.Foreground(render.RgbAccent)
		}
		buf.Set(x, y, r, style)
	}
	buf.SetString(barWidth, y, label, base.Foreground(render.RgbDim))
}
