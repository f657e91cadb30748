package gamification

import (
	"strings"
	"time"

	"github.com/pkritika/cortex/internal/store"
)

const (
	PointsPerCorrect = 100
	PointsPerTest    = 500
)

// UserStats is the derived summary served by the stats endpoint.
type UserStats struct {
	TotalPoints    int     `json:"totalPoints"`
	StreakDays     int     `json:"streakDays"`
	Badges         []Badge `json:"badges"`
	TestsCompleted int     `json:"testsCompleted"`
	CorrectAnswers int     `json:"correctAnswers"`
}

type tally struct {
	tests          int
	correct        int
	perfect        bool
	streak         int
	subjectCorrect map[string]int
}

// SubjectCorrect credits a result's correct answers to subjects. With a
// category breakdown each category's correct count goes to the subject
// before the colon; without one the whole score goes to the result's
// subject. A result is never counted both ways.
func SubjectCorrect(r store.TestResult) map[string]int {
	out := map[string]int{}
	if len(r.CategoryBreakdown) > 0 {
		for cat, t := range r.CategoryBreakdown {
			subject, _, _ := strings.Cut(cat, ":")
			out[strings.ToLower(strings.TrimSpace(subject))] += t.Correct
		}
		return out
	}
	out[strings.ToLower(strings.TrimSpace(r.Subject))] += r.Score
	return out
}

// Calculate aggregates results into UserStats. now and loc fix "today" for
// the streak; a nil loc means time.Local.
func Calculate(results []store.TestResult, now time.Time, loc *time.Location) UserStats {
	t := tally{tests: len(results), subjectCorrect: map[string]int{}}
	timestamps := make([]time.Time, 0, len(results))

	for _, r := range results {
		t.correct += r.Score
		for subject, n := range SubjectCorrect(r) {
			t.subjectCorrect[subject] += n
		}
		if r.TotalQuestions > 0 && r.Score == r.TotalQuestions {
			t.perfect = true
		}
		timestamps = append(timestamps, r.Timestamp)
	}
	t.streak = Streak(timestamps, now, loc)

	badges := make([]Badge, len(definitions))
	for i, d := range definitions {
		b := d.Badge
		b.Unlocked = d.unlocked(t)
		badges[i] = b
	}

	return UserStats{
		TotalPoints:    t.correct*PointsPerCorrect + t.tests*PointsPerTest,
		StreakDays:     t.streak,
		Badges:         badges,
		TestsCompleted: t.tests,
		CorrectAnswers: t.correct,
	}
}
