package quiz

import (
	"time"
)

// Deck is a fully validated presentation: an ordered list of slides
// plus deck-wide defaults.
type Deck struct {
	Title            string
	Shuffle          bool // shuffle choice order on quiz slides
	DefaultPoints    int
	DefaultTimeLimit time.Duration
	Slides           []Slide
}

// Slide is one screen of the presentation. Content slides carry only
// title/body; quiz slides additionally carry Quiz.
type Slide struct {
	Title string
	Body  []string // paragraphs, wrapped at render time
	Music string   // background track filename, empty = keep current
	Quiz  *QuizSlide
}

// QuizSlide is a multiple-choice question with scoring parameters.
type QuizSlide struct {
	Question  string
	Choices   []string
	Correct   int // index into Choices
	Points    int // base point value before time decay
	TimeLimit time.Duration
	FunFact   string // optional explanation shown after resolution
}

// IsQuiz reports whether the slide carries a question.
func (s *Slide) IsQuiz() bool {
	return s.Quiz != nil
}

// QuizCount returns the number of quiz slides in the deck.
func (d *Deck) QuizCount() int {
	n := 0
	for i := range d.Slides {
		if d.Slides[i].IsQuiz() {
			n++
		}
	}
	return n
}

// MaxPossible returns the sum of base point values across all quiz slides.
func (d *Deck) MaxPossible() int {
	total := 0
	for i := range d.Slides {
		if q := d.Slides[i].Quiz; q != nil {
			total += q.Points
		}
	}
	return total
}
