package tui

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coach/internal/assess"
)

// ErrAborted is returned when the learner quits mid-assessment.
var ErrAborted = errors.New("assessment aborted")

// RunQuiz walks the learner through the questions one at a time and
// returns one answer per question, in order. Blank answers are allowed;
// the grader counts them as missed.
func RunQuiz(title string, questions []assess.Question) ([]string, error) {
	m := newQuizModel(title, questions)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("run assessment: %w", err)
	}
	qm := final.(quizModel)
	if qm.aborted {
		return nil, ErrAborted
	}
	return qm.answers, nil
}

type quizModel struct {
	title     string
	questions []assess.Question
	input     textinput.Model
	answers   []string
	idx       int
	aborted   bool
	width     int
	height    int
}

func newQuizModel(title string, questions []assess.Question) quizModel {
	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.Focus()
	return quizModel{
		title:     title,
		questions: questions,
		input:     ti,
	}
}

func (m quizModel) Init() tea.Cmd {
	return m.input.Focus()
}

func (m quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.answers = append(m.answers, strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			m.idx++
			if m.idx >= len(m.questions) {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m quizModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.idx >= len(m.questions) || m.width == 0 {
		return v
	}
	q := m.questions[m.idx]

	width := m.width - 4
	if width > 76 {
		width = 76
	}

	header := titleStyle.Render(m.title)
	bar := progressBar(m.idx, len(m.questions), width)

	var card strings.Builder
	card.WriteString(tagStyle.Render(q.Difficulty))
	card.WriteString(dimStyle.Render(fmt.Sprintf("  question %d of %d", m.idx+1, len(m.questions))))
	card.WriteString("\n\n")
	card.WriteString(bodyStyle.Width(width - 6).Render(q.Text))

	hint := hintStyle.Render("Enter to submit · Esc to quit")

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		bar,
		"",
		cardStyle.Width(width).Render(card.String()),
		"",
		m.input.View(),
		"",
		hint,
	)
	v.SetContent(content)
	return v
}

// progressBar renders answered/total as a filled bar.
func progressBar(done, total, width int) string {
	if width < 8 {
		width = 8
	}
	filled := 0
	if total > 0 {
		filled = width * done / total
	}
	bar := lipgloss.NewStyle().Foreground(primary).Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
	return bar
}
