// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateQuestionRequest: question_text, pub_date (optional), choices
  - VoteRequest: choice_id

# Response Types

Types for JSON responses:

  - IndexResponse: latest_question_list, message
  - DetailResponse: question, choices
  - ResultsResponse: question, choices, total_votes
  - ErrorResponse: error, message

Questions are rendered through QuestionView, which adds the recency flag
and a human-friendly relative publication time.

# Domain Types

  - Question: text and publication instant
  - Choice: answer option with its vote count

# Constants

	NoPollsMessage = "No polls are available."
*/
package models
