package terminal

import (
	"io"
	"os"
	"os/exec"

	"github.com/gdamore/tcell/v2"
)

// Terminal is the minimal screen surface the render pipeline draws to.
// Implemented by the tcell-backed screen; kept as an interface so tests
// can substitute an in-memory surface.
type Terminal interface {
	Init() error
	Fini()
	Size() (width, height int)
	SetContent(x, y int, r rune, style tcell.Style)
	Show()
	Sync()
	PollEvent() tcell.Event
}

type screen struct {
	s tcell.Screen
}

// New creates a tcell-backed terminal
func New() (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &screen{s: s}, nil
}

func (t *screen) Init() error {
	if err := t.s.Init(); err != nil {
		return err
	}
	t.s.SetStyle(tcell.StyleDefault)
	t.s.HideCursor()
	t.s.Clear()
	return nil
}

func (t *screen) Fini() {
	t.s.Fini()
}

func (t *screen) Size() (int, int) {
	return t.s.Size()
}

func (t *screen) SetContent(x, y int, r rune, style tcell.Style) {
	t.s.SetContent(x, y, r, nil, style)
}

func (t *screen) Show() {
	t.s.Show()
}

func (t *screen) Sync() {
	t.s.Sync()
}

func (t *screen) PollEvent() tcell.Event {
	return t.s.PollEvent()
}

// Raw escape sequences for crash recovery, bypassing tcell entirely
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
	csiMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
)

// EmergencyReset restores the terminal to a sane state without relying on
// tcell internals. Safe to call from a panic handler after the screen has
// been corrupted or never finalized.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort stty reset
	resetTerminalMode()
}

func resetTerminalMode() {
	cmd := exec.Command("stty", "sane")
	cmd.Stdin = os.Stdin
	_ = cmd.Run()
}
