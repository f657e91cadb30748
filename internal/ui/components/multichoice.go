package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

// MultiChoice renders one question and tracks the learner's pick.
type MultiChoice struct {
	Question  question.Question
	Selected  int
	Submitted bool
	Chosen    int
}

func NewMultiChoice(q question.Question) MultiChoice {
	return MultiChoice{Question: q, Chosen: -1}
}

// Update moves the cursor with up/down (or j/k) and submits with enter.
// 1-4 and a-d submit the matching option directly.
func (m MultiChoice) Update(msg tea.Msg) MultiChoice {
	if m.Submitted {
		return m
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m
	case "down", "j":
		if m.Selected < len(m.Question.Options)-1 {
			m.Selected++
		}
		return m
	case "enter":
		return m.submit(m.Selected)
	}

	if len(key) == 1 {
		switch c := key[0]; {
		case c >= '1' && c <= '9':
			return m.submit(int(c - '1'))
		case c >= 'a' && c <= 'z':
			return m.submit(int(c - 'a'))
		}
	}
	return m
}

func (m MultiChoice) submit(i int) MultiChoice {
	if i < 0 || i >= len(m.Question.Options) {
		return m
	}
	m.Selected = i
	m.Chosen = i
	m.Submitted = true
	return m
}

func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(m.Question.Text))
	b.WriteString("\n\n")

	for i, opt := range m.Question.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		style := theme.Unselected
		switch {
		case m.Submitted && i == m.Question.CorrectAnswer:
			style = theme.Correct
		case m.Submitted && i == m.Chosen:
			style = theme.Incorrect
		case m.Submitted:
			style = theme.Dimmed
		case i == m.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if m.Submitted && m.Question.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(m.Question.Explanation))
		b.WriteString("\n")
	}
	return b.String()
}

// IsCorrect reports whether the submitted option is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.Chosen == m.Question.CorrectAnswer
}
