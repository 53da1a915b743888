package srs

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
)

func TestRecordResponseRejectsInvalidQuality(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()

	for _, quality := range []domain.Quality{-1, 6, 100} {
		_, err := service.RecordResponse(nil, uuid.New(), quality, testNow)
		if !errors.Is(err, ErrInvalidQuality) {
			t.Errorf("Quality %d: expected ErrInvalidQuality, got %v", quality, err)
		}
	}
}

func TestRecordResponseSynthesizesFreshRecord(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()
	wordID := uuid.New()

	got, err := service.RecordResponse(nil, wordID, 4, testNow)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got.WordID != wordID {
		t.Errorf("Expected word ID %s, got %s", wordID, got.WordID)
	}

	// First passing response of a never-seen word lands on the second
	// learning step.
	if got.Interval != 3 || got.Status != domain.StatusLearning || got.Repetitions != 1 {
		t.Errorf("Unexpected first-response state: interval=%d status=%s repetitions=%d",
			got.Interval, got.Status, got.Repetitions)
	}
}

func TestRecordResponseRejectsNilWordIDForFreshRecord(t *testing.T) {
	t.Parallel()
	service := NewDefaultService()

	_, err := service.RecordResponse(nil, uuid.Nil, 4, testNow)
	if !errors.Is(err, ErrEmptyWordID) {
		t.Errorf("Expected ErrEmptyWordID, got %v", err)
	}
}

func TestRecordResponseUsesExistingRecord(t *testing.T) {
	t.Parallel()
	service := NewServiceWithParams(NewDefaultParams())

	progress := newProgress(domain.StatusReview, 2.5, 7, 2)

	got, err := service.RecordResponse(progress, progress.WordID, 4, testNow)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got == progress {
		t.Fatal("Expected a new record instance, got the input pointer")
	}

	if got.Interval != 18 || got.Repetitions != 3 {
		t.Errorf("Unexpected review state: interval=%d repetitions=%d", got.Interval, got.Repetitions)
	}

	if !got.LastReviewedAt.Equal(testNow) {
		t.Errorf("Expected LastReviewedAt %v, got %v", testNow, got.LastReviewedAt)
	}
}
