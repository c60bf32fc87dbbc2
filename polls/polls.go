// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"errors"
	"sort"
	"time"

	"github.com/danielhkuo/quickly-polls/models"
)

// RecentWindow is how long a question counts as recently published
const RecentWindow = 24 * time.Hour

var (
	ErrInvalidState = errors.New("question has no pub_date")
	ErrNotFound     = errors.New("question not found")
)

// WasPublishedRecently reports whether q went public within RecentWindow
// before now. Future questions are never recent.
func WasPublishedRecently(q models.Question, now time.Time) (bool, error) {
	if q.PubDate.IsZero() {
		return false, ErrInvalidState
	}
	delta := now.Sub(q.PubDate)
	return delta >= 0 && delta < RecentWindow, nil
}

// IsVisible reports whether q is published at or before now
func IsVisible(q models.Question, now time.Time) bool {
	return !q.PubDate.After(now)
}

// ListVisibleQuestions returns the questions published at or before now,
// most recent first. The result is never nil.
func ListVisibleQuestions(all []models.Question, now time.Time) []models.Question {
	visible := make([]models.Question, 0, len(all))
	for _, q := range all {
		if IsVisible(q, now) {
			visible = append(visible, q)
		}
	}

	// Tie order for equal pub_date is unspecified
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].PubDate.After(visible[j].PubDate)
	})

	return visible
}

// GetVisibleQuestion finds the question with the given id. Missing and
// future questions both return ErrNotFound.
func GetVisibleQuestion(all []models.Question, id string, now time.Time) (models.Question, error) {
	for _, q := range all {
		if q.ID != id {
			continue
		}
		if !IsVisible(q, now) {
			return models.Question{}, ErrNotFound
		}
		return q, nil
	}
	return models.Question{}, ErrNotFound
}

// Latest returns at most n questions from an ordered list; n <= 0 means all
func Latest(questions []models.Question, n int) []models.Question {
	if n <= 0 || len(questions) <= n {
		return questions
	}
	return questions[:n]
}
