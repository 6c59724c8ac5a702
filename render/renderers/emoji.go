package renderers

import (
	"github.com/gdamore/tcell/v2"

	"quizdeck/render"
)

// EmojiRenderer draws live celebratory emoji. Each instance rises a
// couple of rows over its lifetime; the spawn depth shows as initial
// dimming, so glyphs appear to fly in from behind the slide.
type EmojiRenderer struct{}

// NewEmojiRenderer creates an emoji overlay renderer
func NewEmojiRenderer() *EmojiRenderer {
	return &EmojiRenderer{}
}

// Render implements SystemRenderer
func (e *EmojiRenderer) Render(ctx render.Context, buf *render.Buffer) {
	base := tcell.StyleDefault.Background(render.RgbBackground)

	for _, in := range ctx.Emoji {
		age := in.Age(ctx.Now)

		// Rise two rows across the animation, settle at landing cell
		rise := 2 - int(age*2)
		y := in.Y + rise

		style := base
		// Far spawn depth reads as dim until the glyph "arrives"
		if age < 0.3 && in.Depth > 1.0 {
			style = style.Dim(true)
		}
		// Fade out at the end of the display window
		if age > 0.85 {
			style = style.Dim(true)
		}

		buf.SetString(in.X, y, in.Glyph, style)
	}
}
