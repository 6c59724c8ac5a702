package quiz

import (
	"math/rand"
)

// ShuffleChoices permutes the choice order of every quiz slide in place,
// updating each correct index so correct-answer identity is preserved.
// Content slides are untouched.
func (d *Deck) ShuffleChoices(rng *rand.Rand) {
	for i := range d.Slides {
		if q := d.Slides[i].Quiz; q != nil {
			q.shuffle(rng)
		}
	}
}

func (q *QuizSlide) shuffle(rng *rand.Rand) {
	perm := rng.Perm(len(q.Choices))

	shuffled := make([]string, len(q.Choices))
	newCorrect := q.Correct
	for newIdx, oldIdx := range perm {
		shuffled[newIdx] = q.Choices[oldIdx]
		if oldIdx == q.Correct {
			newCorrect = newIdx
		}
	}
	q.Choices = shuffled
	q.Correct = newCorrect
}
