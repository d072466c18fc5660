package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/desertthunder/bookmatch/internal/models"
	tu "github.com/desertthunder/bookmatch/internal/testing"
)

func quizModel(t *testing.T) *Model {
	t.Helper()
	return NewModel(context.Background(), Deps{Quiz: &tu.MockQuiz{}}, Route{Name: QuizRoute})
}

func testQuestions() []models.QuizQuestion {
	return []models.QuizQuestion{
		{ID: 10, Text: "Pace?", Options: []models.QuizOption{{ID: 100, Text: "slow"}, {ID: 101, Text: "fast"}}},
		{ID: 20, Text: "Mood?", Options: []models.QuizOption{{ID: 200, Text: "dark"}, {ID: 201, Text: "light"}}},
		{ID: 30, Text: "Length?", Options: []models.QuizOption{{ID: 300, Text: "short"}, {ID: 301, Text: "long"}}},
	}
}

func TestQuizCollectsAnswersInQuestionOrder(t *testing.T) {
	m := quizModel(t)
	m.view = QuizView
	m.handleQuizQuestions(quizQuestionsMsg{questions: testQuestions()})

	m.startQuiz()
	if m.quiz.phase != quizQuestion || m.quiz.index != 0 {
		t.Fatalf("expected first question after start, got phase %v index %d", m.quiz.phase, m.quiz.index)
	}

	m.selectOption(101)
	m.selectOption(200)
	cmd := m.selectOption(301)

	if m.quiz.phase != quizLoading {
		t.Errorf("expected loading after final answer, got %v", m.quiz.phase)
	}
	if cmd == nil {
		t.Error("expected a submit command after the final answer")
	}

	want := []models.QuizAnswer{
		{QuestionID: 10, SelectedOptionID: 101},
		{QuestionID: 20, SelectedOptionID: 200},
		{QuestionID: 30, SelectedOptionID: 301},
	}
	if len(m.quiz.answers) != len(want) {
		t.Fatalf("expected %d answers, got %d", len(want), len(m.quiz.answers))
	}
	for i, answer := range want {
		if m.quiz.answers[i] != answer {
			t.Errorf("answer %d = %+v, want %+v", i, m.quiz.answers[i], answer)
		}
	}
}

func TestQuizSelectOptionIgnoredWhileLoading(t *testing.T) {
	m := quizModel(t)
	m.handleQuizQuestions(quizQuestionsMsg{questions: testQuestions()})
	m.startQuiz()

	m.selectOption(100)
	m.selectOption(200)
	m.selectOption(300)

	if m.quiz.phase != quizLoading {
		t.Fatalf("expected loading phase, got %v", m.quiz.phase)
	}

	if cmd := m.selectOption(301); cmd != nil {
		t.Error("expected selection during loading to be a no-op")
	}
	if len(m.quiz.answers) != 3 {
		t.Errorf("expected 3 answers, got %d", len(m.quiz.answers))
	}
}

func TestQuizSubmissionFailureReturnsToIntro(t *testing.T) {
	m := quizModel(t)
	m.handleQuizQuestions(quizQuestionsMsg{questions: testQuestions()})
	m.startQuiz()
	m.selectOption(100)
	m.selectOption(200)
	m.selectOption(300)

	m.handleQuizResult(quizResultMsg{err: errors.New("boom")})

	if m.quiz.phase != quizIntro {
		t.Errorf("expected intro after failed submission, got %v", m.quiz.phase)
	}
	if m.quiz.answers != nil {
		t.Error("expected answers to be discarded after failure")
	}
	if m.quiz.errNotice == "" {
		t.Error("expected an error notice after failed submission")
	}
}

func TestQuizRestartClearsPriorAnswers(t *testing.T) {
	m := quizModel(t)
	m.handleQuizQuestions(quizQuestionsMsg{questions: testQuestions()})
	m.startQuiz()
	m.selectOption(100)
	m.selectOption(200)
	m.selectOption(300)
	m.handleQuizResult(quizResultMsg{result: &models.QuizResult{
		RecommendedBook: models.Book{Title: "Dune"},
	}})

	if m.quiz.phase != quizResult {
		t.Fatalf("expected result phase, got %v", m.quiz.phase)
	}

	m.startQuiz()
	if m.quiz.phase != quizQuestion || m.quiz.index != 0 {
		t.Errorf("expected restart at first question, got phase %v index %d", m.quiz.phase, m.quiz.index)
	}
	if len(m.quiz.answers) != 0 {
		t.Errorf("expected cleared answers on restart, got %d", len(m.quiz.answers))
	}
	if m.quiz.result != nil {
		t.Error("expected prior result discarded on restart")
	}
}

func TestQuizProgress(t *testing.T) {
	m := quizModel(t)
	m.handleQuizQuestions(quizQuestionsMsg{questions: testQuestions()})
	m.startQuiz()

	if got := m.quizProgress(); got != 0 {
		t.Errorf("expected 0 progress at first question, got %f", got)
	}

	m.selectOption(100)
	if got, want := m.quizProgress(), 1.0/3.0; got != want {
		t.Errorf("expected %f progress, got %f", want, got)
	}
}
