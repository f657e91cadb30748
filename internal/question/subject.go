package question

import (
	"fmt"
	"strings"
)

// Subject is one of the closed set of subjects the platform generates
// questions for.
type Subject string

const (
	SubjectMath      Subject = "math"
	SubjectScience   Subject = "science"
	SubjectHistory   Subject = "history"
	SubjectComputing Subject = "computing"
	SubjectEconomics Subject = "economics"
)

// AllSubjects returns every subject in display order.
func AllSubjects() []Subject {
	return []Subject{
		SubjectMath,
		SubjectScience,
		SubjectHistory,
		SubjectComputing,
		SubjectEconomics,
	}
}

// ParseSubject resolves a subject name case-insensitively.
func ParseSubject(s string) (Subject, error) {
	candidate := Subject(strings.ToLower(strings.TrimSpace(s)))
	for _, sub := range AllSubjects() {
		if sub == candidate {
			return sub, nil
		}
	}
	return "", fmt.Errorf("unknown subject: %q", s)
}

// DisplayName returns the capitalized subject name.
func (s Subject) DisplayName() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Icon returns a display icon for the subject.
func (s Subject) Icon() string {
	switch s {
	case SubjectMath:
		return "∑"
	case SubjectScience:
		return "⚛"
	case SubjectHistory:
		return "📜"
	case SubjectComputing:
		return "💻"
	case SubjectEconomics:
		return "📈"
	default:
		return "?"
	}
}
