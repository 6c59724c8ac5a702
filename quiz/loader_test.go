package quiz

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validDeck = `
title = "Go Trivia"
shuffle = true
points = 200
time_limit = 20

[[slide]]
title = "Welcome"
body = ["Hands on keyboards.", "No phones."]
music = "intro.mp3"

[[slide]]
title = "Round 1"
question = "What does the go keyword do?"
choices = ["Starts a goroutine", "Imports a package", "Builds the binary", "Nothing"]
correct = 0
fun_fact = "Goroutines start with a few kilobytes of stack."

[[slide]]
question = "Which type is comparable?"
choices = ["map", "slice", "array of ints"]
correct = 2
points = 500
time_limit = 10
`

// TestLoad_ValidDeck verifies a full deck round-trips with defaults applied
func TestLoad_ValidDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.toml")
	if err := os.WriteFile(path, []byte(validDeck), 0644); err != nil {
		t.Fatalf("Failed to write deck file: %v", err)
	}

	deck, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if deck.Title != "Go Trivia" {
		t.Errorf("Expected title 'Go Trivia', got %q", deck.Title)
	}
	if !deck.Shuffle {
		t.Error("Expected shuffle flag to be set")
	}
	if len(deck.Slides) != 3 {
		t.Fatalf("Expected 3 slides, got %d", len(deck.Slides))
	}
	if deck.QuizCount() != 2 {
		t.Errorf("Expected 2 quiz slides, got %d", deck.QuizCount())
	}

	// Content slide has no quiz
	if deck.Slides[0].IsQuiz() {
		t.Error("Slide 1 should be a content slide")
	}
	if deck.Slides[0].Music != "intro.mp3" {
		t.Errorf("Expected intro.mp3 music, got %q", deck.Slides[0].Music)
	}

	// Deck defaults apply to slide 2
	q1 := deck.Slides[1].Quiz
	if q1.Points != 200 {
		t.Errorf("Expected deck default 200 points, got %d", q1.Points)
	}
	if q1.TimeLimit != 20*time.Second {
		t.Errorf("Expected deck default 20s limit, got %s", q1.TimeLimit)
	}

	// Per-slide overrides apply to slide 3
	q2 := deck.Slides[2].Quiz
	if q2.Points != 500 {
		t.Errorf("Expected 500 points override, got %d", q2.Points)
	}
	if q2.TimeLimit != 10*time.Second {
		t.Errorf("Expected 10s limit override, got %s", q2.TimeLimit)
	}
	if q2.Correct != 2 {
		t.Errorf("Expected correct index 2, got %d", q2.Correct)
	}

	if deck.MaxPossible() != 700 {
		t.Errorf("Expected max possible 700, got %d", deck.MaxPossible())
	}
}

// TestParse_BuiltinDefaults verifies constants fill omitted deck defaults
func TestParse_BuiltinDefaults(t *testing.T) {
	deck, err := Parse(`
[[slide]]
question = "q"
choices = ["a", "b"]
correct = 1
`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	q := deck.Slides[0].Quiz
	if q.Points != 100 {
		t.Errorf("Expected builtin default 100 points, got %d", q.Points)
	}
	if q.TimeLimit != 30*time.Second {
		t.Errorf("Expected builtin default 30s limit, got %s", q.TimeLimit)
	}
}

// TestParse_Invalid verifies validation failures
func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		toml string
	}{
		{"empty deck", ``},
		{"correct out of range", `
[[slide]]
question = "q"
choices = ["a", "b"]
correct = 2
`},
		{"negative correct", `
[[slide]]
question = "q"
choices = ["a", "b"]
correct = -1
`},
		{"single choice", `
[[slide]]
question = "q"
choices = ["a"]
correct = 0
`},
		{"empty choice", `
[[slide]]
question = "q"
choices = ["a", ""]
correct = 0
`},
		{"choices without question", `
[[slide]]
title = "t"
choices = ["a", "b"]
`},
		{"negative points", `
[[slide]]
question = "q"
choices = ["a", "b"]
correct = 0
points = -5
`},
		{"negative time limit", `
[[slide]]
question = "q"
choices = ["a", "b"]
correct = 0
time_limit = -1
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.toml); err == nil {
				t.Errorf("Expected error for %s, got nil", tc.name)
			}
		})
	}
}

// TestLoad_MissingFile verifies a readable error for absent deck files
func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Expected error loading missing file")
	}
}
