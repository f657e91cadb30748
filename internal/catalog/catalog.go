// Package catalog holds the static course catalog and the fallback
// practice tests served when generation yields nothing.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pkritika/cortex/internal/question"
)

// ErrNotFound is returned for unknown course IDs.
var ErrNotFound = errors.New("not found")

//go:embed courses.json
var coursesJSON []byte

//go:embed practice_tests.json
var practiceTestsJSON []byte

// Video is an embedded lesson. URL holds the YouTube video ID.
type Video struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Duration string `json:"duration"`
}

// Course groups lesson videos and optional quizzes.
type Course struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Thumbnail   string          `json:"thumbnail"`
	Videos      []Video         `json:"videos"`
	Quizzes     []question.Quiz `json:"quizzes"`
}

// Catalog is read-only after Load.
type Catalog struct {
	courses       []Course
	byID          map[string]int
	practiceTests map[question.Subject]question.Quiz
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	var courses []Course
	if err := json.Unmarshal(coursesJSON, &courses); err != nil {
		return nil, fmt.Errorf("parse courses: %w", err)
	}
	var tests map[question.Subject]question.Quiz
	if err := json.Unmarshal(practiceTestsJSON, &tests); err != nil {
		return nil, fmt.Errorf("parse practice tests: %w", err)
	}

	c := &Catalog{courses: courses, byID: make(map[string]int, len(courses)), practiceTests: tests}
	for i, course := range courses {
		if _, dup := c.byID[course.ID]; dup {
			return nil, fmt.Errorf("duplicate course id %q", course.ID)
		}
		c.byID[course.ID] = i
	}
	return c, nil
}

// MustLoad is Load for package-level wiring; the embedded data is fixed at
// build time so a failure is a programming error.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Courses returns every course in catalog order.
func (c *Catalog) Courses() []Course {
	return append([]Course(nil), c.courses...)
}

// Course looks up a course by ID.
func (c *Catalog) Course(id string) (Course, error) {
	i, ok := c.byID[id]
	if !ok {
		return Course{}, fmt.Errorf("course %q: %w", id, ErrNotFound)
	}
	return c.courses[i], nil
}

// PracticeTest returns the static practice test for subject.
func (c *Catalog) PracticeTest(subject question.Subject) (question.Quiz, bool) {
	q, ok := c.practiceTests[subject]
	return q, ok
}
