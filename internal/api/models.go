package api

import (
	"time"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
)

// WordResponse represents the response data for a word.
type WordResponse struct {
	ID            string    `json:"id"`
	Text          string    `json:"text"`
	Translation   string    `json:"translation"`
	Level         string    `json:"level,omitempty"`
	Category      string    `json:"category,omitempty"`
	FrequencyRank int       `json:"frequency_rank"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProgressResponse represents the scheduling state of a word.
type ProgressResponse struct {
	WordID         string     `json:"word_id"`
	Status         string     `json:"status"`
	EaseFactor     float64    `json:"ease_factor"`
	Interval       int        `json:"interval"`
	Repetitions    int        `json:"repetitions"`
	CorrectCount   int        `json:"correct_count"`
	WrongCount     int        `json:"wrong_count"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	NextReviewAt   time.Time  `json:"next_review_at"`
}

// DueWordResponse pairs a word with its scheduling state in the due queue.
type DueWordResponse struct {
	Word     WordResponse     `json:"word"`
	Progress ProgressResponse `json:"progress"`
}

// DailyStatsResponse represents the counters for one calendar day.
type DailyStatsResponse struct {
	Date     string `json:"date"`
	Reviewed int    `json:"reviewed"`
	Correct  int    `json:"correct"`
	Wrong    int    `json:"wrong"`
}

// ReviewRequest defines the payload for grading a response.
type ReviewRequest struct {
	Quality *int `json:"quality" validate:"required,gte=0,lte=5"`
}

func wordToResponse(word *domain.Word) WordResponse {
	return WordResponse{
		ID:            word.ID.String(),
		Text:          word.Text,
		Translation:   word.Translation,
		Level:         word.Level,
		Category:      word.Category,
		FrequencyRank: word.FrequencyRank,
		CreatedAt:     word.CreatedAt,
	}
}

func progressToResponse(progress *domain.WordProgress) ProgressResponse {
	resp := ProgressResponse{
		WordID:       progress.WordID.String(),
		Status:       string(progress.Status),
		EaseFactor:   progress.EaseFactor,
		Interval:     progress.Interval,
		Repetitions:  progress.Repetitions,
		CorrectCount: progress.CorrectCount,
		WrongCount:   progress.WrongCount,
		NextReviewAt: progress.NextReviewAt,
	}
	if !progress.LastReviewedAt.IsZero() {
		t := progress.LastReviewedAt
		resp.LastReviewedAt = &t
	}
	return resp
}

func dueWordsToResponse(due []domain.DueWord) []DueWordResponse {
	out := make([]DueWordResponse, 0, len(due))
	for _, d := range due {
		out = append(out, DueWordResponse{
			Word:     wordToResponse(d.Word),
			Progress: progressToResponse(d.Progress),
		})
	}
	return out
}

func wordsToResponse(words []*domain.Word) []WordResponse {
	out := make([]WordResponse, 0, len(words))
	for _, w := range words {
		out = append(out, wordToResponse(w))
	}
	return out
}

func statsToResponse(stats *domain.DailyStats) DailyStatsResponse {
	return DailyStatsResponse{
		Date:     stats.Date,
		Reviewed: stats.Reviewed,
		Correct:  stats.Correct,
		Wrong:    stats.Wrong,
	}
}
