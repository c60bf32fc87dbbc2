package models

import "time"

// NoPollsMessage is shown by the index view when nothing is visible.
const NoPollsMessage = "No polls are available."

// Request types

type CreateQuestionRequest struct {
	QuestionText string     `json:"question_text"`
	PubDate      *time.Time `json:"pub_date,omitempty"` // defaults to now
	Choices      []string   `json:"choices"`
}

type VoteRequest struct {
	ChoiceID string `json:"choice_id"`
}

// Response types

// QuestionView is a Question as rendered to clients.
type QuestionView struct {
	ID                   string    `json:"id"`
	QuestionText         string    `json:"question_text"`
	PubDate              time.Time `json:"pub_date"`
	Published            string    `json:"published"` // e.g. "3 days ago"
	WasPublishedRecently bool      `json:"was_published_recently"`
}

type IndexResponse struct {
	LatestQuestionList []QuestionView `json:"latest_question_list"`
	Message            string         `json:"message,omitempty"`
}

type DetailResponse struct {
	Question QuestionView `json:"question"`
	Choices  []Choice     `json:"choices"`
}

type ResultsResponse struct {
	Question   QuestionView `json:"question"`
	Choices    []Choice     `json:"choices"`
	TotalVotes int          `json:"total_votes"`
}

// Domain types

type Question struct {
	ID           string    `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

type Choice struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
