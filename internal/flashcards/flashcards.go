// Package flashcards turns generated questions into prompt/answer cards.
package flashcards

import (
	"context"

	"github.com/pkritika/cortex/internal/practice"
	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/random"
)

const (
	DefaultAmount           = 20
	DefaultAmountPerSubject = 10
)

// FromQuestion keeps the question text and its correct option.
func FromQuestion(q question.Question, subject question.Subject) question.Flashcard {
	return question.Flashcard{
		ID:       q.ID,
		Subject:  subject,
		Question: q.Text,
		Answer:   q.Answer(),
		Category: q.Category,
	}
}

// Deck draws cards from local sources only; the oracle is never consulted.
type Deck struct {
	sources practice.Sources
	src     random.Source
}

func NewDeck(sources practice.Sources, src random.Source) (*Deck, error) {
	if err := sources.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = random.Default()
	}
	return &Deck{sources: sources, src: src}, nil
}

// ForSubject returns amount cards for subject; unknown subjects yield none.
func (d *Deck) ForSubject(ctx context.Context, subject string, amount int) []question.Flashcard {
	sub, err := question.ParseSubject(subject)
	if err != nil || amount <= 0 {
		return []question.Flashcard{}
	}
	qs := d.sources[sub].Questions(ctx, amount)
	cards := make([]question.Flashcard, 0, len(qs))
	for _, q := range qs {
		cards = append(cards, FromQuestion(q, sub))
	}
	return cards
}

// All concatenates amountPerSubject cards from every subject and shuffles them.
func (d *Deck) All(ctx context.Context, amountPerSubject int) []question.Flashcard {
	var cards []question.Flashcard
	for _, sub := range question.AllSubjects() {
		cards = append(cards, d.ForSubject(ctx, string(sub), amountPerSubject)...)
	}
	if cards == nil {
		return []question.Flashcard{}
	}
	return random.Shuffle(d.src, cards)
}
