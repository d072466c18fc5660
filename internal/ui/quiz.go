package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/bookmatch/internal/models"
)

// quizPhase tracks the wizard's position.
type quizPhase int

const (
	quizIntro quizPhase = iota
	quizQuestion
	quizLoading
	quizResult
)

// quizState is the quiz wizard. answers grows append-only, one entry per
// answered question in question order.
type quizState struct {
	phase     quizPhase
	questions []models.QuizQuestion
	index     int
	selected  int
	answers   []models.QuizAnswer
	result    *models.QuizResult
	errNotice string
	loadErr   error
}

type quizQuestionsMsg struct {
	questions []models.QuizQuestion
	err       error
}

type quizResultMsg struct {
	result *models.QuizResult
	err    error
}

func (m *Model) enterQuiz() tea.Cmd {
	m.quiz = quizState{phase: quizIntro}
	return m.fetchQuizQuestions()
}

func (m *Model) fetchQuizQuestions() tea.Cmd {
	return func() tea.Msg {
		questions, err := m.deps.Quiz.Questions(m.ctx)
		return quizQuestionsMsg{questions: questions, err: err}
	}
}

func (m *Model) handleQuizQuestions(msg quizQuestionsMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.quiz.loadErr = msg.err
		return m, nil
	}
	m.quiz.questions = msg.questions
	return m, nil
}

func (m *Model) handleQuizKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.quiz.phase {
	case quizIntro:
		switch msg.String() {
		case "enter":
			m.startQuiz()
			return m, nil
		case "esc":
			return m, m.navigate(Route{Name: HomeRoute})
		}

	case quizQuestion:
		question := m.quiz.questions[m.quiz.index]
		switch msg.String() {
		case "up", "k":
			if m.quiz.selected > 0 {
				m.quiz.selected--
			}
			return m, nil
		case "down", "j":
			if m.quiz.selected < len(question.Options)-1 {
				m.quiz.selected++
			}
			return m, nil
		case "enter":
			return m, m.selectOption(question.Options[m.quiz.selected].ID)
		case "esc":
			return m, m.navigate(Route{Name: HomeRoute})
		}
		return m, nil

	case quizLoading:
		// Submission in flight, input is inert.
		return m, nil

	case quizResult:
		switch msg.String() {
		case "r":
			m.quiz.phase = quizIntro
			m.quiz.result = nil
			return m, nil
		case "enter":
			if m.quiz.result != nil {
				book := m.quiz.result.RecommendedBook
				return m, m.navigate(Route{Name: BookDetailRoute, Param: bookParam(book)})
			}
			return m, nil
		case "esc":
			return m, m.navigate(Route{Name: HomeRoute})
		}
	}

	if model, cmd, handled := m.handleGlobalNav(msg); handled {
		return model, cmd
	}
	return m, nil
}

// startQuiz moves from the intro to the first question, dropping any
// answers from a previous run.
func (m *Model) startQuiz() {
	if len(m.quiz.questions) == 0 {
		return
	}
	m.quiz.phase = quizQuestion
	m.quiz.index = 0
	m.quiz.selected = 0
	m.quiz.answers = nil
	m.quiz.errNotice = ""
	m.quiz.result = nil
}

// selectOption records the answer for the current question and either
// advances to the next question or submits the completed sequence.
func (m *Model) selectOption(optionID int64) tea.Cmd {
	if m.quiz.phase != quizQuestion {
		return nil
	}

	question := m.quiz.questions[m.quiz.index]
	m.quiz.answers = append(m.quiz.answers, models.QuizAnswer{
		QuestionID:       question.ID,
		SelectedOptionID: optionID,
	})

	if m.quiz.index+1 < len(m.quiz.questions) {
		m.quiz.index++
		m.quiz.selected = 0
		return nil
	}

	m.quiz.phase = quizLoading
	return m.submitQuiz(m.quiz.answers)
}

func (m *Model) submitQuiz(answers []models.QuizAnswer) tea.Cmd {
	return func() tea.Msg {
		result, err := m.deps.Quiz.Submit(m.ctx, answers)
		return quizResultMsg{result: result, err: err}
	}
}

func (m *Model) handleQuizResult(msg quizResultMsg) (tea.Model, tea.Cmd) {
	if m.quiz.phase != quizLoading {
		return m, nil
	}

	if msg.err != nil {
		// A failed submission restarts the whole quiz.
		m.quiz.phase = quizIntro
		m.quiz.answers = nil
		m.quiz.errNotice = "No pudimos procesar el quiz. Inténtalo de nuevo."
		return m, nil
	}

	m.quiz.phase = quizResult
	m.quiz.result = msg.result
	return m, nil
}

// quizProgress is the display fraction of questions answered so far.
func (m *Model) quizProgress() float64 {
	if len(m.quiz.questions) == 0 {
		return 0
	}
	return float64(m.quiz.index) / float64(len(m.quiz.questions))
}

func (m *Model) renderQuiz() string {
	switch m.quiz.phase {
	case quizIntro:
		title := styles.title.Render("Book Quiz")
		body := "Answer a few questions and get a book picked for you."
		if m.quiz.loadErr != nil {
			body = styles.err.Render(fmt.Sprintf("Error: %v", m.quiz.loadErr))
		} else if len(m.quiz.questions) == 0 {
			body = "Loading questions..."
		}
		var notice string
		if m.quiz.errNotice != "" {
			notice = "\n" + styles.err.Render(m.quiz.errNotice)
		}
		footer := styles.help.Render("enter start • esc back")
		return fmt.Sprintf("%s\n%s%s\n\n%s", title, body, notice, footer)

	case quizQuestion:
		question := m.quiz.questions[m.quiz.index]
		title := styles.title.Render(fmt.Sprintf("Question %d of %d (%.0f%%)",
			m.quiz.index+1, len(m.quiz.questions), m.quizProgress()*100))

		var b strings.Builder
		b.WriteString(question.Text + "\n\n")
		for i, option := range question.Options {
			cursor := "  "
			if i == m.quiz.selected {
				cursor = styles.ok.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%s\n", cursor, option.Text))
		}

		footer := styles.help.Render("↑/↓ choose • enter select • esc abandon")
		return fmt.Sprintf("%s\n%s\n%s", title, b.String(), footer)

	case quizLoading:
		return styles.title.Render("Book Quiz") + "\nFinding your match..."

	case quizResult:
		result := m.quiz.result
		title := styles.ok.Render("✓ Your match: " + result.RecommendedBook.Title)
		body := result.RecommendedBook.Authors
		if result.MatchPercentage > 0 {
			body = fmt.Sprintf("%s • %.0f%% match", body, result.MatchPercentage)
		}
		if result.Explanation != "" {
			body += "\n\n" + result.Explanation
		}
		if len(result.AlternativeBooks) > 0 {
			body += "\n\n" + styles.warn.Render("Also consider:")
			for _, alt := range result.AlternativeBooks {
				body += fmt.Sprintf("\n  • %s", alt.Title)
			}
		}
		footer := styles.help.Render("enter view book • r restart • esc back")
		return fmt.Sprintf("%s\n%s\n\n%s", title, body, footer)
	}

	return ""
}
