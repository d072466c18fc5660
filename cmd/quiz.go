package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/bookmatch/internal/models"
	"github.com/desertthunder/bookmatch/internal/shared"
	"github.com/urfave/cli/v3"
)

// QuizQuestions lists the quiz questions with their option ids.
func (r *Runner) QuizQuestions(ctx context.Context, cmd *cli.Command) error {
	questions, err := r.quiz.Questions(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch questions: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(questions, true)
	}

	r.writePlainHeader("Quiz Questions")
	for i, question := range questions {
		r.writePlain("%d. %s (id %d)\n", i+1, question.Text, question.ID)
		for _, option := range question.Options {
			r.writePlain("   [%d] %s\n", option.ID, option.Text)
		}
	}
	r.writePlainln("Answer with: bookmatch quiz answer \"qid:optid,qid:optid,...\"")
	return nil
}

// QuizAnswer submits a complete answer sequence and prints the match.
func (r *Runner) QuizAnswer(ctx context.Context, cmd *cli.Command) error {
	raw := cmd.StringArg("answers")
	if raw == "" {
		return fmt.Errorf("%w: answers", shared.ErrMissingArgument)
	}

	answers, err := parseQuizAnswers(raw)
	if err != nil {
		return err
	}

	r.logger.Info("submitting quiz answers", "count", len(answers))

	result, err := r.quiz.Submit(ctx, answers)
	if err != nil {
		return fmt.Errorf("quiz submission failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, true)
	}

	r.writePlainHeader("Your Match")
	r.writePlain("%s by %s\n", result.RecommendedBook.Title, result.RecommendedBook.Authors)
	if result.MatchPercentage > 0 {
		r.writePlain("Match: %.0f%%\n", result.MatchPercentage)
	}
	if result.Explanation != "" {
		r.writePlainln("%s", result.Explanation)
	}
	for _, alt := range result.AlternativeBooks {
		r.writePlain("Also consider: %s\n", alt.Title)
	}
	return nil
}

// parseQuizAnswers decodes "qid:optid,qid:optid" pairs in question order.
func parseQuizAnswers(raw string) ([]models.QuizAnswer, error) {
	pairs := strings.Split(raw, ",")
	answers := make([]models.QuizAnswer, 0, len(pairs))

	for _, pair := range pairs {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: answer %q is not qid:optid", shared.ErrInvalidArgument, pair)
		}

		questionID, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: question id %q is not numeric", shared.ErrInvalidArgument, parts[0])
		}
		optionID, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: option id %q is not numeric", shared.ErrInvalidArgument, parts[1])
		}

		answers = append(answers, models.QuizAnswer{QuestionID: questionID, SelectedOptionID: optionID})
	}

	return answers, nil
}
