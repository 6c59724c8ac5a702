package emoji

import (
	"math/rand"
	"testing"
	"time"

	"quizdeck/constants"
)

func newTestManager() *Manager {
	return NewManager(80, 24, rand.New(rand.NewSource(1)))
}

// TestSpawn_PoolsMatchOutcome verifies glyphs come from the outcome pool
func TestSpawn_PoolsMatchOutcome(t *testing.T) {
	m := newTestManager()
	now := time.Now()

	inPool := func(pool []string, glyph string) bool {
		for _, g := range pool {
			if g == glyph {
				return true
			}
		}
		return false
	}

	for i := 0; i < 20; i++ {
		if in := m.Spawn(true, now); !inPool(correctPool, in.Glyph) {
			t.Errorf("Correct spawn produced %q, not in correct pool", in.Glyph)
		}
		if in := m.Spawn(false, now); !inPool(incorrectPool, in.Glyph) {
			t.Errorf("Incorrect spawn produced %q, not in incorrect pool", in.Glyph)
		}
	}
}

// TestSpawn_AvoidsRecentGlyphs verifies consecutive picks never repeat
// within the recency window
func TestSpawn_AvoidsRecentGlyphs(t *testing.T) {
	m := newTestManager()
	now := time.Now()

	var picks []string
	for i := 0; i < 100; i++ {
		picks = append(picks, m.Spawn(true, now).Glyph)
	}

	for i := constants.EmojiRecentWindow; i < len(picks); i++ {
		for j := i - constants.EmojiRecentWindow; j < i; j++ {
			if picks[i] == picks[j] {
				t.Fatalf("Pick %d (%s) repeats pick %d within window", i, picks[i], j)
			}
		}
	}
}

// TestSpawn_BoundsRespected verifies landing positions leave room for
// the glyph footprint
func TestSpawn_BoundsRespected(t *testing.T) {
	m := newTestManager()
	now := time.Now()

	for i := 0; i < 200; i++ {
		in := m.Spawn(i%2 == 0, now)
		if in.X < 0 || in.X >= 80-constants.EmojiFootprintWidth {
			t.Fatalf("X out of bounds: %d", in.X)
		}
		if in.Y < 0 || in.Y >= 24-constants.EmojiFootprintHeight {
			t.Fatalf("Y out of bounds: %d", in.Y)
		}
	}
}

// TestSpawn_AvoidsOverlapWhenRoomExists verifies the second spawn on an
// open screen does not sit on top of the first
func TestSpawn_AvoidsOverlapWhenRoomExists(t *testing.T) {
	now := time.Now()

	// Many independent trials; rejection sampling should keep overlap at
	// or below the threshold whenever the screen is nearly empty
	for seed := int64(0); seed < 50; seed++ {
		m := NewManager(120, 40, rand.New(rand.NewSource(seed)))
		a := m.Spawn(true, now)
		b := m.Spawn(true, now)
		if area := overlapArea(a.X, a.Y, b.X, b.Y); area > constants.EmojiOverlapThreshold {
			t.Errorf("Seed %d: overlap area %d exceeds threshold %d",
				seed, area, constants.EmojiOverlapThreshold)
		}
	}
}

// TestSpawn_CrowdedScreenStillPlaces verifies the bounded retry loop
// always yields a position
func TestSpawn_CrowdedScreenStillPlaces(t *testing.T) {
	// Tiny screen, every position overlaps after a few spawns
	m := NewManager(constants.EmojiFootprintWidth+2, constants.EmojiFootprintHeight+2,
		rand.New(rand.NewSource(7)))
	now := time.Now()

	for i := 0; i < 30; i++ {
		if in := m.Spawn(true, now); in == nil {
			t.Fatal("Spawn returned nil on crowded screen")
		}
	}
	if len(m.Active()) != 30 {
		t.Errorf("Expected 30 live instances, got %d", len(m.Active()))
	}
}

// TestSweep_RemovesExpired verifies lifetime-based removal
func TestSweep_RemovesExpired(t *testing.T) {
	m := newTestManager()
	t0 := time.Now()

	m.Spawn(true, t0)
	m.Spawn(false, t0.Add(time.Second))

	m.Sweep(t0.Add(constants.EmojiLifetime + time.Millisecond))
	live := m.Active()
	if len(live) != 1 {
		t.Fatalf("Expected 1 live instance after first sweep, got %d", len(live))
	}

	m.Sweep(t0.Add(time.Second + constants.EmojiLifetime))
	if len(m.Active()) != 0 {
		t.Errorf("Expected no live instances after final sweep, got %d", len(m.Active()))
	}
}

// TestInstance_AgeClamps verifies animation progress stays in [0, 1]
func TestInstance_AgeClamps(t *testing.T) {
	m := newTestManager()
	t0 := time.Now()
	in := m.Spawn(true, t0)

	if age := in.Age(t0.Add(-time.Second)); age != 0 {
		t.Errorf("Expected age 0 before birth, got %f", age)
	}
	if age := in.Age(t0.Add(constants.EmojiLifetime / 2)); age < 0.45 || age > 0.55 {
		t.Errorf("Expected age near 0.5 at half lifetime, got %f", age)
	}
	if age := in.Age(t0.Add(10 * constants.EmojiLifetime)); age != 1 {
		t.Errorf("Expected age clamped to 1, got %f", age)
	}
}
