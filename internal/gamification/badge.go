// Package gamification derives points, streaks and badges from a user's
// result history. Nothing here is persisted; stats are recomputed per call.
package gamification

// BadgeID identifies a badge definition.
type BadgeID string

const (
	BadgeScholar       BadgeID = "scholar"
	BadgeMathWhiz      BadgeID = "math-whiz"
	BadgeSciencePro    BadgeID = "science-pro"
	BadgeDedication    BadgeID = "dedication"
	BadgePerfectionist BadgeID = "perfectionist"
)

// Badge is a definition plus its computed unlock state.
type Badge struct {
	ID          BadgeID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Unlocked    bool    `json:"unlocked"`
}

// SubjectCorrectThreshold is the correct-answer count for subject badges.
const SubjectCorrectThreshold = 20

// DedicationStreak is the streak length that unlocks BadgeDedication.
const DedicationStreak = 3

type badgeDef struct {
	Badge
	unlocked func(t tally) bool
}

// Display order is fixed.
var definitions = []badgeDef{
	{
		Badge:    Badge{ID: BadgeScholar, Name: "Scholar", Description: "Complete your first practice test", Icon: "award-blue"},
		unlocked: func(t tally) bool { return t.tests >= 1 },
	},
	{
		Badge:    Badge{ID: BadgeMathWhiz, Name: "Math Whiz", Description: "Get 20 correct answers in Math", Icon: "sigma"},
		unlocked: func(t tally) bool { return t.subjectCorrect["math"] >= SubjectCorrectThreshold },
	},
	{
		Badge:    Badge{ID: BadgeSciencePro, Name: "Science Pro", Description: "Get 20 correct answers in Science", Icon: "atom"},
		unlocked: func(t tally) bool { return t.subjectCorrect["science"] >= SubjectCorrectThreshold },
	},
	{
		Badge:    Badge{ID: BadgeDedication, Name: "Dedication", Description: "Maintain a 3-day streak", Icon: "flame"},
		unlocked: func(t tally) bool { return t.streak >= DedicationStreak },
	},
	{
		Badge:    Badge{ID: BadgePerfectionist, Name: "Perfectionist", Description: "Achieve a 100% score on a test", Icon: "star"},
		unlocked: func(t tally) bool { return t.perfect },
	},
}

// Definitions returns every badge, all locked, in display order.
func Definitions() []Badge {
	out := make([]Badge, len(definitions))
	for i, d := range definitions {
		out[i] = d.Badge
	}
	return out
}
