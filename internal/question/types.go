// Package question defines the multiple-choice question model shared by the
// generators, the quiz assembler and the flashcard adapter.
package question

// OptionCount is the number of options every generated question carries.
const OptionCount = 4

// Question is a single multiple-choice question ready to be served.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`

	// Options holds exactly OptionCount display strings.
	Options []string `json:"options"`

	// CorrectAnswer is the index of the correct option in Options.
	CorrectAnswer int `json:"correctAnswer"`

	// Category is "<Subject>: <Topic>", e.g. "Math: Calculus".
	Category string `json:"category,omitempty"`

	// Explanation is only filled by the oracle path.
	Explanation string `json:"explanation,omitempty"`
}

// Answer returns the text of the correct option, or "" if the index is invalid.
func (q Question) Answer() string {
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectAnswer]
}

// Clone returns a deep copy so callers can shuffle options freely.
func (q Question) Clone() Question {
	c := q
	c.Options = append([]string(nil), q.Options...)
	return c
}

// Quiz is an ordered set of questions served as one practice test.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Flashcard is a question reduced to its prompt and correct answer.
type Flashcard struct {
	ID       string  `json:"id"`
	Subject  Subject `json:"subject"`
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Category string  `json:"category,omitempty"`
}
