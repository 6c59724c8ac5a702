package emoji

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"quizdeck/constants"
)

// Glyph pools per outcome. Picks are biased against the immediately
// preceding selections so bursts of answers feel varied.
var (
	correctPool   = []string{"🎉", "⭐", "🔥", "👏", "🚀", "💯", "🏆"}
	incorrectPool = []string{"😅", "💥", "🙈", "😬", "🤔", "💨"}
)

// Instance is one transient celebratory emoji. Created on answer
// resolution, auto-removed after animation plus display duration.
type Instance struct {
	ID       uuid.UUID
	Glyph    string
	X, Y     int     // landing cell
	Depth    float64 // spawn depth, rendered as initial scale/dimming
	Rotation float64 // radians, rendering hint
	Born     time.Time
	Deadline time.Time
}

// Age returns animation progress in [0, 1]
func (in *Instance) Age(now time.Time) float64 {
	total := in.Deadline.Sub(in.Born)
	if total <= 0 {
		return 1
	}
	frac := float64(now.Sub(in.Born)) / float64(total)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// Manager owns the set of live emoji instances. All methods are safe
// for concurrent use from the tick scheduler and render loop.
type Manager struct {
	mu     sync.Mutex
	rng    *rand.Rand
	width  int
	height int

	active []*Instance
	recent []string // last picks, newest last
}

// NewManager creates a manager for the given screen size
func NewManager(width, height int, rng *rand.Rand) *Manager {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Manager{
		rng:    rng,
		width:  width,
		height: height,
	}
}

// Resize updates placement bounds
func (m *Manager) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width = width
	m.height = height
}

// Spawn creates an instance for the given outcome and returns it.
// Placement rejects positions overlapping a live instance beyond the
// area threshold; after the bounded retry count the last candidate is
// accepted so feedback always appears.
func (m *Manager) Spawn(correct bool, now time.Time) *Instance {
	m.mu.Lock()
	defer m.mu.Unlock()

	pool := incorrectPool
	if correct {
		pool = correctPool
	}

	in := &Instance{
		ID:       uuid.New(),
		Glyph:    m.pickGlyph(pool),
		Depth:    0.5 + m.rng.Float64(),         // spawn depth, off-screen toward viewer
		Rotation: (m.rng.Float64() - 0.5) * 0.8, // slight tilt either way
		Born:     now,
		Deadline: now.Add(constants.EmojiLifetime),
	}
	in.X, in.Y = m.place()

	m.active = append(m.active, in)
	return in
}

// Sweep removes instances past their deadline
func (m *Manager) Sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.active[:0]
	for _, in := range m.active {
		if now.Before(in.Deadline) {
			live = append(live, in)
		}
	}
	m.active = live
}

// Active returns a copy of live instances for rendering
func (m *Manager) Active() []*Instance {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Instance, len(m.active))
	copy(out, m.active)
	return out
}

// pickGlyph selects from pool, avoiding the most recent picks when the
// pool is large enough to allow it
func (m *Manager) pickGlyph(pool []string) string {
	candidates := pool
	if len(pool) > constants.EmojiRecentWindow {
		candidates = make([]string, 0, len(pool))
		for _, g := range pool {
			if !m.isRecent(g) {
				candidates = append(candidates, g)
			}
		}
		if len(candidates) == 0 {
			candidates = pool
		}
	}

	glyph := candidates[m.rng.Intn(len(candidates))]

	m.recent = append(m.recent, glyph)
	if len(m.recent) > constants.EmojiRecentWindow {
		m.recent = m.recent[len(m.recent)-constants.EmojiRecentWindow:]
	}
	return glyph
}

func (m *Manager) isRecent(glyph string) bool {
	for _, r := range m.recent {
		if r == glyph {
			return true
		}
	}
	return false
}

// place samples landing positions, rejecting heavy overlap with live
// instances. Bounded retries; the final candidate wins regardless.
func (m *Manager) place() (int, int) {
	w := m.width - constants.EmojiFootprintWidth
	h := m.height - constants.EmojiFootprintHeight
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	var x, y int
	for attempt := 0; attempt < constants.EmojiPlacementRetries; attempt++ {
		x = m.rng.Intn(w)
		y = m.rng.Intn(h)
		if m.maxOverlap(x, y) <= constants.EmojiOverlapThreshold {
			break
		}
	}
	return x, y
}

// maxOverlap returns the largest footprint intersection area between
// the candidate position and any live instance
func (m *Manager) maxOverlap(x, y int) int {
	max := 0
	for _, in := range m.active {
		a := overlapArea(x, y, in.X, in.Y)
		if a > max {
			max = a
		}
	}
	return max
}

func overlapArea(ax, ay, bx, by int) int {
	ox := constants.EmojiFootprintWidth - abs(ax-bx)
	oy := constants.EmojiFootprintHeight - abs(ay-by)
	if ox <= 0 || oy <= 0 {
		return 0
	}
	return ox * oy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
