package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/pkritika/cortex/internal/gamification"
	"github.com/pkritika/cortex/internal/question"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func sampleQuestion() question.Question {
	return question.Question{
		ID:            "hist-1",
		Text:          "Who was the first President of the USA?",
		Options:       []string{"Abraham Lincoln", "George Washington", "Thomas Jefferson", "John Adams"},
		CorrectAnswer: 1,
		Explanation:   "Washington served 1789-1797.",
	}
}

func TestMultiChoice_Navigation(t *testing.T) {
	m := NewMultiChoice(sampleQuestion())

	m = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 0 {
		t.Errorf("up at top moved cursor to %d", m.Selected)
	}
	m = m.Update(keyPress('j'))
	m = m.Update(specialKey(tea.KeyDown))
	m = m.Update(keyPress('k'))
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}
	m = m.Update(specialKey(tea.KeyEnter))
	if !m.Submitted || !m.IsCorrect() {
		t.Errorf("expected a correct submission, got %+v", m)
	}

	// Further input is ignored once submitted.
	m = m.Update(keyPress('j'))
	if m.Selected != 1 {
		t.Error("cursor moved after submit")
	}
}

func TestMultiChoice_Hotkeys(t *testing.T) {
	tests := []struct {
		key  rune
		want int
	}{
		{'1', 0}, {'4', 3}, {'a', 0}, {'c', 2},
	}
	for _, tt := range tests {
		m := NewMultiChoice(sampleQuestion()).Update(keyPress(tt.key))
		if !m.Submitted || m.Chosen != tt.want {
			t.Errorf("key %q: chosen %d submitted %v, want %d", tt.key, m.Chosen, m.Submitted, tt.want)
		}
	}

	m := NewMultiChoice(sampleQuestion()).Update(keyPress('9'))
	if m.Submitted {
		t.Error("out-of-range hotkey submitted")
	}
}

func TestMultiChoice_ViewShowsExplanationAfterSubmit(t *testing.T) {
	m := NewMultiChoice(sampleQuestion())
	if strings.Contains(m.View(), "1789") {
		t.Error("explanation shown before submit")
	}
	m = m.Update(keyPress('a'))
	if m.IsCorrect() {
		t.Error("option A should be wrong")
	}
	if !strings.Contains(m.View(), "1789") {
		t.Error("explanation missing after submit")
	}
}

func TestProgressBar(t *testing.T) {
	v := ProgressBar{Label: "Quiz", Done: 2, Total: 5, Width: 10}.View()
	if !strings.Contains(v, "2/5") {
		t.Errorf("progress view %q missing count", v)
	}
	v = ProgressBar{Done: 0, Total: 0, Width: 1}.View()
	if !strings.Contains(v, "0/0") {
		t.Errorf("empty progress view %q", v)
	}
}

func TestStatsCard(t *testing.T) {
	badges := gamification.Definitions()
	badges[0].Unlocked = true
	v := StatsCard("u1", gamification.UserStats{
		TotalPoints:    700,
		StreakDays:     1,
		Badges:         badges,
		TestsCompleted: 1,
		CorrectAnswers: 2,
	})
	for _, want := range []string{"u1", "700", "Scholar", "Achieve a 100% score on a test (locked)"} {
		if !strings.Contains(v, want) {
			t.Errorf("stats card missing %q:\n%s", want, v)
		}
	}
	if strings.Contains(v, "Complete your first practice test (locked)") {
		t.Error("unlocked badge rendered as locked")
	}
}
