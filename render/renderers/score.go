package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"quizdeck/render"
)

// ScoreRenderer draws the running score in the top-right corner
type ScoreRenderer struct{}

// NewScoreRenderer creates a score renderer
func NewScoreRenderer() *ScoreRenderer {
	return &ScoreRenderer{}
}

// Render implements SystemRenderer
func (s *ScoreRenderer) Render(ctx render.Context, buf *render.Buffer) {
	w, _ := buf.Size()

	label := fmt.Sprintf("Score %d / %d", ctx.Score.Earned, ctx.Score.Possible)
	style := tcell.StyleDefault.
		Background(render.RgbBackground).
		Foreground(render.RgbWarning).
		Bold(true)

	buf.SetString(w-runewidth.StringWidth(label)-1, 0, label, style)
}
