package renderers

import (
	"github.com/gdamore/tcell/v2"

	"quizdeck/render"
)

// BackgroundRenderer paints the base canvas color
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates a background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render implements SystemRenderer
func (b *BackgroundRenderer) Render(ctx render.Context, buf *render.Buffer) {
	style := tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbForeground)
	w, h := buf.Size()
	buf.Fill(0, 0, w, h, ' ', style)
}
