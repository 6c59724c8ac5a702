package renderers

import (
	"github.com/gdamore/tcell/v2"

	"quizdeck/render"
)

// StatusBarRenderer draws the bottom bar: audio badge, current track,
// pause state and key hints
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.Context, buf *render.Buffer) {
	w, h := buf.Size()
	y := h - 1
	base := tcell.StyleDefault.Background(render.RgbBackground)

	for x := 0; x < w; x++ {
		buf.Set(x, y, ' ', base)
	}

	x := 0

	// Audio badge
	badge := " ♪ "
	badgeColor := render.RgbAudioBadge
	if ctx.Muted {
		badge = " muted "
		badgeColor = render.RgbMutedBadge
	}
	x = buf.SetString(x, y, badge, base.Foreground(tcell.ColorBlack).Background(badgeColor))

	if ctx.Track != "" {
		x = buf.SetString(x+1, y, ctx.Track, base.Foreground(render.RgbDim))
	}

	if ctx.Paused {
		x = buf.SetString(x+2, y, "PAUSED", base.Foreground(render.RgbWarning).Bold(true))
	}

	hints := "1-4 answer  n next  p prev  s skip  m mute  q quit"
	hx := w - len(hints) - 1
	if hx > x {
		buf.SetString(hx, y, hints, base.Foreground(render.RgbDim))
	}
}
