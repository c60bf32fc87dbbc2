// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/db"
	"github.com/danielhkuo/quickly-polls/middleware"
	"github.com/danielhkuo/quickly-polls/models"
	"github.com/danielhkuo/quickly-polls/polls"
)

const noChoiceMessage = "You didn't select a choice."

type PollHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	clock polls.Clock
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config, clock polls.Clock) *PollHandler {
	if clock == nil {
		clock = polls.SystemClock{}
	}
	return &PollHandler{db: db, cfg: cfg, clock: clock}
}

// Index handles GET /polls
// Lists the latest visible questions, newest first
func (h *PollHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()

	all, err := db.AllQuestions(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to load questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	latest := polls.Latest(polls.ListVisibleQuestions(all, now), h.cfg.IndexLimit)

	views := make([]models.QuestionView, 0, len(latest))
	for _, q := range latest {
		view, err := questionView(q, now)
		if err != nil {
			slog.Error("invalid question", "question_id", q.ID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Invalid question")
			return
		}
		views = append(views, view)
	}

	resp := models.IndexResponse{LatestQuestionList: views}
	if len(views) == 0 {
		resp.Message = models.NoPollsMessage
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Detail handles GET /polls/{id}
// Future questions are reported as missing
func (h *PollHandler) Detail(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()

	q, ok := h.visibleQuestion(w, r, now)
	if !ok {
		return
	}

	choices, err := db.ChoicesFor(r.Context(), h.db, q.ID)
	if err != nil {
		slog.Error("failed to load choices", "question_id", q.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	view, err := questionView(q, now)
	if err != nil {
		slog.Error("invalid question", "question_id", q.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Invalid question")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DetailResponse{
		Question: view,
		Choices:  choices,
	})
}

// Results handles GET /polls/{id}/results
func (h *PollHandler) Results(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()

	q, ok := h.visibleQuestion(w, r, now)
	if !ok {
		return
	}

	h.writeResults(w, r, q, now)
}

// Vote handles POST /polls/{id}/vote
// Adds one vote to the selected choice and returns the updated results
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()

	q, ok := h.visibleQuestion(w, r, now)
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ChoiceID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, noChoiceMessage)
		return
	}

	err := db.Vote(r.Context(), h.db, q.ID, req.ChoiceID)
	if errors.Is(err, db.ErrChoiceNotFound) {
		middleware.ErrorResponse(w, http.StatusBadRequest, noChoiceMessage)
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "question_id", q.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "question_id", q.ID, "choice_id", req.ChoiceID)

	h.writeResults(w, r, q, now)
}

// CreateQuestion handles POST /polls
func (h *PollHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text := strings.TrimSpace(req.QuestionText)
	if text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text is required")
		return
	}

	choices := make([]string, 0, len(req.Choices))
	for _, c := range req.Choices {
		c = strings.TrimSpace(c)
		if c == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "choice_text is required")
			return
		}
		choices = append(choices, c)
	}

	now := h.clock.Now()
	pubDate := now
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}
	if pubDate.IsZero() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pub_date is required")
		return
	}

	q, created, err := db.InsertQuestion(r.Context(), h.db, text, pubDate, choices)
	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", q.ID, "pub_date", q.PubDate, "choices", len(created))

	view, err := questionView(q, now)
	if err != nil {
		slog.Error("invalid question", "question_id", q.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Invalid question")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.DetailResponse{
		Question: view,
		Choices:  created,
	})
}

// visibleQuestion resolves the {id} path value against the published
// questions. On failure the error response is already written.
func (h *PollHandler) visibleQuestion(w http.ResponseWriter, r *http.Request, now time.Time) (models.Question, bool) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return models.Question{}, false
	}

	all, err := db.AllQuestions(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to load questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Question{}, false
	}

	q, err := polls.GetVisibleQuestion(all, id, now)
	if errors.Is(err, polls.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return models.Question{}, false
	}
	if err != nil {
		slog.Error("failed to look up question", "question_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Question{}, false
	}

	return q, true
}

func (h *PollHandler) writeResults(w http.ResponseWriter, r *http.Request, q models.Question, now time.Time) {
	choices, err := db.ChoicesFor(r.Context(), h.db, q.ID)
	if err != nil {
		slog.Error("failed to load choices", "question_id", q.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	view, err := questionView(q, now)
	if err != nil {
		slog.Error("invalid question", "question_id", q.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Invalid question")
		return
	}

	total := 0
	for _, c := range choices {
		total += c.Votes
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Question:   view,
		Choices:    choices,
		TotalVotes: total,
	})
}

func questionView(q models.Question, now time.Time) (models.QuestionView, error) {
	recent, err := polls.WasPublishedRecently(q, now)
	if err != nil {
		return models.QuestionView{}, err
	}
	return models.QuestionView{
		ID:                   q.ID,
		QuestionText:         q.QuestionText,
		PubDate:              q.PubDate,
		Published:            humanize.RelTime(q.PubDate, now, "ago", "from now"),
		WasPublishedRecently: recent,
	}, nil
}
