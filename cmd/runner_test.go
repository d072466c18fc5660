package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/shared"
	tu "github.com/desertthunder/bookmatch/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			books := &tu.MockBooks{}
			library := &tu.MockLibrary{}

			runner := NewRunner(RunnerOpts{
				Config:  config,
				Logger:  logger,
				Output:  output,
				Books:   books,
				Library: library,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.books != books {
				t.Error("expected books client to be set")
			}
			if runner.engine == nil {
				t.Error("expected export engine wired from books and library")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
			if runner.engine != nil {
				t.Error("expected no engine without services")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		data := map[string]string{"title": "Dune"}
		if err := runner.writeJSON(data, false); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}
		if got := output.String(); got != "{\"title\":\"Dune\"}\n" {
			t.Errorf("unexpected output %q", got)
		}

		output.Reset()
		if err := runner.writeJSON(data, true); err != nil {
			t.Fatalf("pretty writeJSON failed: %v", err)
		}
		if !strings.Contains(output.String(), "  \"title\"") {
			t.Errorf("expected indented output, got %q", output.String())
		}
	})

	t.Run("writeJSON with failing writer", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})
		if err := runner.writeJSON(map[string]string{}, false); err == nil {
			t.Error("expected an error from a failing writer")
		}
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("hello %s\n", "world"); err != nil {
			t.Fatalf("writePlain failed: %v", err)
		}
		if output.String() != "hello world\n" {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("requireSession without store", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})

		err := runner.requireSession()
		if !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
	})
}

func TestParseQuizAnswers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []models.QuizAnswer
		wantErr bool
	}{
		{
			name:  "single pair",
			input: "1:10",
			want:  []models.QuizAnswer{{QuestionID: 1, SelectedOptionID: 10}},
		},
		{
			name:  "multiple pairs with spaces",
			input: "1:10, 2:20 ,3:30",
			want: []models.QuizAnswer{
				{QuestionID: 1, SelectedOptionID: 10},
				{QuestionID: 2, SelectedOptionID: 20},
				{QuestionID: 3, SelectedOptionID: 30},
			},
		},
		{name: "missing colon", input: "110", wantErr: true},
		{name: "non-numeric question", input: "a:10", wantErr: true},
		{name: "non-numeric option", input: "1:b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers, err := parseQuizAnswers(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if len(answers) != len(tt.want) {
				t.Fatalf("expected %d answers, got %d", len(tt.want), len(answers))
			}
			for i, answer := range tt.want {
				if answers[i] != answer {
					t.Errorf("answer %d = %+v, want %+v", i, answers[i], answer)
				}
			}
		})
	}
}
