package question

import "fmt"

// Validator checks a question before it is served.
type Validator interface {
	Name() string
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator  string
	QuestionID string
	Message    string
}

func (e *ValidationError) Error() string {
	if e.QuestionID != "" {
		return fmt.Sprintf("validator %q: question %s: %s", e.Validator, e.QuestionID, e.Message)
	}
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks text, option count, option uniqueness and the
// correct index.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), QuestionID: q.ID, Message: msg}
	}
	if q.Text == "" {
		return fail("text is empty")
	}
	if len(q.Options) != OptionCount {
		return fail(fmt.Sprintf("expected %d options, got %d", OptionCount, len(q.Options)))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fail(fmt.Sprintf("correct answer index %d out of range", q.CorrectAnswer))
	}
	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if o == "" {
			return fail("empty option")
		}
		if seen[o] {
			return fail(fmt.Sprintf("duplicate option %q", o))
		}
		seen[o] = true
	}
	return nil
}

// Validate runs validators in order and returns the first failure.
func Validate(q *Question, validators ...Validator) error {
	for _, v := range validators {
		if err := v.Validate(q); err != nil {
			return err
		}
	}
	return nil
}
