package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette (Tokyo Night leaning, matches the deck aesthetic)
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)
	RgbForeground = tcell.NewRGBColor(192, 202, 245)
	RgbDim        = tcell.NewRGBColor(86, 95, 137)
	RgbAccent     = tcell.NewRGBColor(122, 162, 247)
	RgbCorrect    = tcell.NewRGBColor(158, 206, 106)
	RgbIncorrect  = tcell.NewRGBColor(247, 118, 142)
	RgbWarning    = tcell.NewRGBColor(224, 175, 104)
	RgbMutedBadge = tcell.NewRGBColor(247, 118, 142)
	RgbAudioBadge = tcell.NewRGBColor(158, 206, 106)
)

// LerpColor blends between two colors in a perceptual space.
// t is clamped to [0, 1]; 0 returns from, 1 returns to.
func LerpColor(from, to tcell.Color, t float64) tcell.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	fr, fg, fb := from.TrueColor().RGB()
	tr, tg, tb := to.TrueColor().RGB()

	a := colorful.Color{R: float64(fr) / 255, G: float64(fg) / 255, B: float64(fb) / 255}
	b := colorful.Color{R: float64(tr) / 255, G: float64(tg) / 255, B: float64(tb) / 255}

	m := a.BlendLuv(b, t).Clamped()
	return tcell.NewRGBColor(int32(m.R*255), int32(m.G*255), int32(m.B*255))
}
