package question

import "github.com/pkritika/cortex/internal/random"

type taggedOption struct {
	text    string
	correct bool
}

// Arrange shuffles options and returns the new slice together with the index
// the option at correct moved to. Options are tracked by origin, not by text,
// so duplicate strings cannot confuse the relocation.
func Arrange(src random.Source, options []string, correct int) ([]string, int) {
	tagged := make([]taggedOption, len(options))
	for i, o := range options {
		tagged[i] = taggedOption{text: o, correct: i == correct}
	}
	tagged = random.Shuffle(src, tagged)

	out := make([]string, len(tagged))
	idx := -1
	for i, t := range tagged {
		out[i] = t.text
		if t.correct {
			idx = i
		}
	}
	return out, idx
}

// NewShuffled builds a question whose first option is the correct one and
// then shuffles the options.
func NewShuffled(src random.Source, id, text, category, correct string, distractors []string) Question {
	opts := append([]string{correct}, distractors...)
	opts, idx := Arrange(src, opts, 0)
	return Question{
		ID:            id,
		Text:          text,
		Options:       opts,
		CorrectAnswer: idx,
		Category:      category,
	}
}

// Reshuffle returns a copy of q with its options shuffled and CorrectAnswer
// following the correct option.
func Reshuffle(src random.Source, q Question) Question {
	c := q.Clone()
	c.Options, c.CorrectAnswer = Arrange(src, c.Options, c.CorrectAnswer)
	return c
}
