// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-polls/models"
)

var ErrChoiceNotFound = errors.New("choice not found")

// InsertQuestion stores a question and its choices in one transaction.
// IDs are assigned here.
func InsertQuestion(ctx context.Context, db *sql.DB, text string, pubDate time.Time, choices []string) (models.Question, []models.Choice, error) {
	q := models.Question{
		ID:           uuid.NewString(),
		QuestionText: text,
		PubDate:      pubDate.UTC(),
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return models.Question{}, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO question (id, question_text, pub_date)
		VALUES ($1, $2, $3)
	`, q.ID, q.QuestionText, q.PubDate)
	if err != nil {
		return models.Question{}, nil, fmt.Errorf("failed to insert question: %w", err)
	}

	created := make([]models.Choice, 0, len(choices))
	for i, label := range choices {
		c := models.Choice{
			ID:         uuid.NewString(),
			QuestionID: q.ID,
			ChoiceText: label,
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO choice (id, question_id, choice_text, votes, position)
			VALUES ($1, $2, $3, 0, $4)
		`, c.ID, c.QuestionID, c.ChoiceText, i)
		if err != nil {
			return models.Question{}, nil, fmt.Errorf("failed to insert choice: %w", err)
		}
		created = append(created, c)
	}

	if err := tx.Commit(); err != nil {
		return models.Question{}, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return q, created, nil
}

// AllQuestions returns every stored question in no particular order
func AllQuestions(ctx context.Context, db *sql.DB) ([]models.Question, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}

	return questions, nil
}

// ChoicesFor returns the choices of a question in the order they were added
func ChoicesFor(ctx context.Context, db *sql.DB, questionID string) ([]models.Choice, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY position, id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read choices: %w", err)
	}

	return choices, nil
}

// Vote adds one vote to a choice of the given question.
// Returns ErrChoiceNotFound if the choice does not belong to it.
func Vote(ctx context.Context, db *sql.DB, questionID, choiceID string) error {
	res, err := db.ExecContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}
	if n == 0 {
		return ErrChoiceNotFound
	}

	return nil
}
