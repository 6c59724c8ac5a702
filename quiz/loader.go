package quiz

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"quizdeck/constants"
)

// Raw TOML shapes. Durations are written as whole seconds in deck files.
type rawDeck struct {
	Title     string     `toml:"title"`
	Shuffle   bool       `toml:"shuffle"`
	Points    int        `toml:"points"`
	TimeLimit int        `toml:"time_limit"`
	Slides    []rawSlide `toml:"slide"`
}

type rawSlide struct {
	Title     string   `toml:"title"`
	Body      []string `toml:"body"`
	Music     string   `toml:"music"`
	Question  string   `toml:"question"`
	Choices   []string `toml:"choices"`
	Correct   int      `toml:"correct"`
	Points    int      `toml:"points"`
	TimeLimit int      `toml:"time_limit"`
	FunFact   string   `toml:"fun_fact"`
}

// Load reads and validates a deck file.
func Load(path string) (*Deck, error) {
	var raw rawDeck
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("decode deck %s: %w", path, err)
	}
	deck, err := buildDeck(&raw)
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}
	return deck, nil
}

// Parse builds a deck from in-memory TOML, used by tests and embedding.
func Parse(data string) (*Deck, error) {
	var raw rawDeck
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	return buildDeck(&raw)
}

func buildDeck(raw *rawDeck) (*Deck, error) {
	deck := &Deck{
		Title:            raw.Title,
		Shuffle:          raw.Shuffle,
		DefaultPoints:    raw.Points,
		DefaultTimeLimit: time.Duration(raw.TimeLimit) * time.Second,
	}
	if deck.DefaultPoints == 0 {
		deck.DefaultPoints = constants.DefaultBasePoints
	}
	if deck.DefaultTimeLimit == 0 {
		deck.DefaultTimeLimit = constants.DefaultTimeLimit
	}
	if deck.DefaultPoints < 0 {
		return nil, fmt.Errorf("deck points must be positive, got %d", deck.DefaultPoints)
	}

	if len(raw.Slides) == 0 {
		return nil, fmt.Errorf("deck has no slides")
	}

	for i := range raw.Slides {
		slide, err := buildSlide(&raw.Slides[i], deck)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		deck.Slides = append(deck.Slides, slide)
	}

	return deck, nil
}

func buildSlide(raw *rawSlide, deck *Deck) (Slide, error) {
	slide := Slide{
		Title: raw.Title,
		Body:  raw.Body,
		Music: raw.Music,
	}

	if raw.Question == "" {
		if len(raw.Choices) > 0 {
			return Slide{}, fmt.Errorf("choices given without a question")
		}
		return slide, nil
	}

	if len(raw.Choices) < 2 {
		return Slide{}, fmt.Errorf("question needs at least 2 choices, got %d", len(raw.Choices))
	}
	for i, c := range raw.Choices {
		if c == "" {
			return Slide{}, fmt.Errorf("choice %d is empty", i+1)
		}
	}
	if raw.Correct < 0 || raw.Correct >= len(raw.Choices) {
		return Slide{}, fmt.Errorf("correct index %d out of range [0,%d)", raw.Correct, len(raw.Choices))
	}

	q := &QuizSlide{
		Question:  raw.Question,
		Choices:   append([]string(nil), raw.Choices...),
		Correct:   raw.Correct,
		Points:    raw.Points,
		TimeLimit: time.Duration(raw.TimeLimit) * time.Second,
		FunFact:   raw.FunFact,
	}
	if q.Points == 0 {
		q.Points = deck.DefaultPoints
	}
	if q.Points < 0 {
		return Slide{}, fmt.Errorf("points must be positive, got %d", q.Points)
	}
	if q.TimeLimit == 0 {
		q.TimeLimit = deck.DefaultTimeLimit
	}
	if q.TimeLimit < 0 {
		return Slide{}, fmt.Errorf("time limit must be positive, got %s", q.TimeLimit)
	}

	slide.Quiz = q
	return slide, nil
}
