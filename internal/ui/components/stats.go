package components

import (
	"fmt"
	"strings"

	"github.com/pkritika/cortex/internal/gamification"
	"github.com/pkritika/cortex/internal/ui/theme"
)

// badgeGlyphs maps badge icon identifiers to terminal glyphs.
var badgeGlyphs = map[string]string{
	"award-blue": "🏅",
	"sigma":      "Σ",
	"atom":       "⚛",
	"flame":      "🔥",
	"star":       "★",
}

// StatsCard renders a user's stats and badge shelf.
func StatsCard(userID string, s gamification.UserStats) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Stats for " + userID))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value int
	}{
		{"Points", s.TotalPoints},
		{"Streak (days)", s.StreakDays},
		{"Tests completed", s.TestsCompleted},
		{"Correct answers", s.CorrectAnswers},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%-16s %s\n", r.label, theme.StatValue.Render(fmt.Sprint(r.value)))
	}

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Badges"))
	b.WriteString("\n")
	for _, badge := range s.Badges {
		glyph := badgeGlyphs[badge.Icon]
		if glyph == "" {
			glyph = "•"
		}
		line := fmt.Sprintf("%s %-14s %s", glyph, badge.Name, badge.Description)
		if badge.Unlocked {
			b.WriteString(theme.BadgeUnlocked.Render(line))
		} else {
			b.WriteString(theme.BadgeLocked.Render(line + " (locked)"))
		}
		b.WriteString("\n")
	}
	return theme.Card.Render(b.String())
}
