package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"quizdeck/events"
)

// Handler maps terminal key events onto session events. It runs on the
// main goroutine; the scheduler consumes what it pushes.
type Handler struct {
	queue *events.Queue
}

// NewHandler creates an input handler over the session queue
func NewHandler(queue *events.Queue) *Handler {
	return &Handler{queue: queue}
}

// HandleEvent processes one terminal event. Returns false to exit.
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		h.push(events.TypeAnswer, -1)
	case tcell.KeyUp:
		h.push(events.TypeSelectionMove, -1)
	case tcell.KeyDown:
		h.push(events.TypeSelectionMove, 1)
	case tcell.KeyRight:
		h.push(events.TypeAdvance, nil)
	case tcell.KeyLeft:
		h.push(events.TypeRetreat, nil)
	case tcell.KeyTab:
		h.push(events.TypeTogglePause, nil)
	case tcell.KeyRune:
		return h.handleRune(key.Rune())
	}
	return true
}

func (h *Handler) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case '1', '2', '3', '4':
		h.push(events.TypeAnswer, int(r-'1'))
	case 'a', 'b', 'c', 'd':
		h.push(events.TypeAnswer, int(r-'a'))
	case 'k':
		h.push(events.TypeSelectionMove, -1)
	case 'j':
		h.push(events.TypeSelectionMove, 1)
	case 'n', ' ', 'l':
		h.push(events.TypeAdvance, nil)
	case 'p', 'h':
		h.push(events.TypeRetreat, nil)
	case 's':
		h.push(events.TypeSkip, nil)
	case 'm':
		h.push(events.TypeToggleMute, nil)
	}
	return true
}

func (h *Handler) push(t events.Type, payload any) {
	h.queue.Push(events.Event{
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now(),
	})
}
