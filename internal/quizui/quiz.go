// Package quizui is the interactive terminal quiz behind `cortex quiz`.
package quizui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/pkritika/cortex/internal/gamification"
	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/store"
	"github.com/pkritika/cortex/internal/ui/components"
	"github.com/pkritika/cortex/internal/ui/layout"
	"github.com/pkritika/cortex/internal/ui/theme"
)

// SaveFunc persists the finished result.
type SaveFunc func(ctx context.Context, r store.TestResult) error

type phase int

const (
	phaseUser phase = iota
	phaseQuestion
	phaseFeedback
	phaseDone
)

type savedMsg struct{ err error }

// Model walks through a quiz one question at a time and saves the result
// when the last question is answered.
type Model struct {
	quiz    question.Quiz
	subject question.Subject
	userID  string
	save    SaveFunc
	now     func() time.Time

	phase     phase
	prompt    components.TextInput
	current   components.MultiChoice
	idx       int
	correct   int
	breakdown map[string]store.CategoryTally

	saved   bool
	saveErr error

	width, height int
}

// New builds a quiz model. An empty userID prompts for one first; a nil
// save skips persistence.
func New(quiz question.Quiz, subject question.Subject, userID string, save SaveFunc) Model {
	m := Model{
		quiz:      quiz,
		subject:   subject,
		userID:    userID,
		save:      save,
		now:       time.Now,
		breakdown: map[string]store.CategoryTally{},
	}
	if userID == "" {
		m.phase = phaseUser
		m.prompt = components.NewTextInput("user id, e.g. u1", 64)
	} else {
		m.start()
	}
	return m
}

func (m *Model) start() {
	if len(m.quiz.Questions) == 0 {
		m.phase = phaseDone
		return
	}
	m.phase = phaseQuestion
	m.current = components.NewMultiChoice(m.quiz.Questions[0])
}

func (m Model) Init() tea.Cmd {
	if m.phase == phaseUser {
		return m.prompt.Init()
	}
	return m.finishIfEmpty()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case savedMsg:
		m.saved = true
		m.saveErr = msg.err
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	if m.phase == phaseUser {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch m.phase {
	case phaseUser:
		if key == "enter" {
			if v := m.prompt.Value(); v != "" {
				m.userID = v
				m.start()
				return m, m.finishIfEmpty()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd

	case phaseQuestion:
		if key == "q" || key == "esc" {
			return m, tea.Quit
		}
		m.current = m.current.Update(msg)
		if m.current.Submitted {
			m.record()
			m.phase = phaseFeedback
		}
		return m, nil

	case phaseFeedback:
		switch key {
		case "enter", "space", " ", "n":
			m.idx++
			if m.idx >= len(m.quiz.Questions) {
				m.phase = phaseDone
				return m, m.saveCmd()
			}
			m.current = components.NewMultiChoice(m.quiz.Questions[m.idx])
			m.phase = phaseQuestion
		case "q", "esc":
			return m, tea.Quit
		}
		return m, nil

	case phaseDone:
		switch key {
		case "enter", "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) finishIfEmpty() tea.Cmd {
	if m.phase == phaseDone {
		return m.saveCmd()
	}
	return nil
}

func (m *Model) record() {
	q := m.current.Question
	cat := q.Category
	if cat == "" {
		cat = m.subject.DisplayName()
	}
	t := m.breakdown[cat]
	t.Total++
	if m.current.IsCorrect() {
		t.Correct++
		m.correct++
	}
	m.breakdown[cat] = t
}

// Result is the TestResult for the answers given so far.
func (m Model) Result() store.TestResult {
	bd := make(map[string]store.CategoryTally, len(m.breakdown))
	for k, v := range m.breakdown {
		bd[k] = v
	}
	return store.TestResult{
		UserID:            m.userID,
		Subject:           string(m.subject),
		Score:             m.correct,
		TotalQuestions:    len(m.quiz.Questions),
		Timestamp:         m.now().UTC(),
		CategoryBreakdown: bd,
	}
}

// Finished reports whether every question was answered.
func (m Model) Finished() bool { return m.phase == phaseDone }

// SaveErr is the persistence error, if any.
func (m Model) SaveErr() error { return m.saveErr }

func (m Model) saveCmd() tea.Cmd {
	if m.save == nil {
		return nil
	}
	r := m.Result()
	save := m.save
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return savedMsg{err: save(ctx, r)}
	}
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

func (m Model) render() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	answered := m.idx
	if m.phase == phaseFeedback {
		answered = m.idx + 1
	}
	header := layout.RenderHeader(m.quiz.Title, m.correct, answered, width)
	footer := layout.RenderFooter(m.hints(), width)
	return layout.RenderFrame(header, m.body(answered), footer, width, m.height)
}

func (m Model) body(answered int) string {
	switch m.phase {
	case phaseUser:
		return theme.Title.Render("Who is taking this quiz?") + "\n\n" + m.prompt.View()
	case phaseDone:
		return m.summary()
	}

	bar := components.ProgressBar{Label: "Progress", Done: answered, Total: len(m.quiz.Questions), Width: 30}
	out := bar.View() + "\n\n" + m.current.View()
	if m.phase == phaseFeedback {
		if m.current.IsCorrect() {
			out += "\n" + theme.Correct.Render("Correct!")
		} else {
			out += "\n" + theme.Incorrect.Render("Not quite. Answer: "+m.current.Question.Answer())
		}
	}
	return out
}

func (m Model) summary() string {
	total := len(m.quiz.Questions)
	points := m.correct*gamification.PointsPerCorrect + gamification.PointsPerTest

	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz complete"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score: %s\n", theme.StatValue.Render(fmt.Sprintf("%d/%d", m.correct, total)))
	fmt.Fprintf(&b, "Points earned: %s\n", theme.StatValue.Render(fmt.Sprint(points)))
	if total > 0 && m.correct == total {
		b.WriteString(theme.BadgeUnlocked.Render("Perfect score!") + "\n")
	}

	switch {
	case m.save == nil:
	case !m.saved:
		b.WriteString(theme.Hint.Render("Saving result...") + "\n")
	case m.saveErr != nil:
		b.WriteString(theme.Incorrect.Render("Could not save result: "+m.saveErr.Error()) + "\n")
	default:
		b.WriteString(theme.Hint.Render("Result saved for "+m.userID) + "\n")
	}
	return b.String()
}

func (m Model) hints() []layout.KeyHint {
	switch m.phase {
	case phaseUser:
		return []layout.KeyHint{{Key: "enter", Description: "start"}, {Key: "ctrl+c", Description: "quit"}}
	case phaseQuestion:
		return []layout.KeyHint{{Key: "↑/↓", Description: "move"}, {Key: "enter/1-4", Description: "answer"}, {Key: "q", Description: "quit"}}
	case phaseFeedback:
		return []layout.KeyHint{{Key: "enter", Description: "next"}, {Key: "q", Description: "quit"}}
	default:
		return []layout.KeyHint{{Key: "enter", Description: "exit"}}
	}
}

// Run plays the quiz in the terminal and returns the final model.
func Run(m Model) (Model, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return m, err
	}
	fm, ok := final.(Model)
	if !ok {
		return m, fmt.Errorf("unexpected model %T", final)
	}
	return fm, nil
}
