package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Skizziik/englishapp-sub000/internal/api/shared"
	"github.com/Skizziik/englishapp-sub000/internal/domain"
	"github.com/Skizziik/englishapp-sub000/internal/platform/logger"
	"github.com/Skizziik/englishapp-sub000/internal/service/review"
)

// ReviewHandler handles study-session HTTP requests.
type ReviewHandler struct {
	reviewService review.ReviewService
	logger        *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService review.ReviewService, log *slog.Logger) *ReviewHandler {
	if reviewService == nil {
		panic("reviewService cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ReviewHandler{
		reviewService: reviewService,
		logger:        log.With(slog.String("component", "review_handler")),
	}
}

// GetDueWords handles GET /words/due requests. It returns the queue of
// words whose review time has arrived, oldest due first. Supported query
// parameters: limit, category.
func (h *ReviewHandler) GetDueWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	limit, err := queryLimit(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
		return
	}
	category := r.URL.Query().Get("category")

	due, err := h.reviewService.GetDueWords(r.Context(), limit, category)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to get due words", err)
		return
	}

	log.Debug("due words retrieved", slog.Int("count", len(due)))
	shared.RespondWithJSON(w, r, http.StatusOK, dueWordsToResponse(due))
}

// GetNewWords handles GET /words/new requests. It returns words the
// learner has never answered, most frequent first. Supported query
// parameters: limit, level, category.
func (h *ReviewHandler) GetNewWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	limit, err := queryLimit(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
		return
	}
	level := r.URL.Query().Get("level")
	category := r.URL.Query().Get("category")

	words, err := h.reviewService.GetNewWords(r.Context(), limit, level, category)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to get new words", err)
		return
	}

	log.Debug("new words retrieved", slog.Int("count", len(words)))
	shared.RespondWithJSON(w, r, http.StatusOK, wordsToResponse(words))
}

// RecordResponse handles POST /words/{id}/review requests. It grades a
// single response and returns the updated scheduling state.
func (h *ReviewHandler) RecordResponse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	wordID, err := pathWordID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	var req ReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed review request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Quality must be between 0 and 5")
		return
	}

	updated, err := h.reviewService.RecordResponse(r.Context(), wordID, domain.Quality(*req.Quality))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("response recorded",
		slog.String("word_id", wordID.String()),
		slog.String("status", string(updated.Status)),
		slog.Int("interval", updated.Interval))
	shared.RespondWithJSON(w, r, http.StatusOK, progressToResponse(updated))
}

// GetTodayStats handles GET /stats/today requests.
func (h *ReviewHandler) GetTodayStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reviewService.GetTodayStats(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to get daily stats", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, statsToResponse(stats))
}

// queryLimit parses the optional limit query parameter. Zero means "use the
// service default"; negatives and junk are rejected.
func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, domain.ErrValidation
	}
	return limit, nil
}

// pathWordID extracts and parses the word UUID from the URL path.
func pathWordID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return uuid.Nil, domain.ErrValidation
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Join(domain.ErrInvalidID, err)
	}
	return id, nil
}
