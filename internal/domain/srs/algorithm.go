package srs

import (
	"math"
	"time"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
)

// successEaseFactor applies the continuous SM-2 ease update for a passing
// response:
//
//	ease' = ease + (0.1 - (5-q) * (0.08 + (5-q) * 0.02))
//
// The result is clamped to [params.MinEaseFactor, params.MaxEaseFactor].
// Quality 4 yields a zero delta; 3 lowers ease slightly, 5 raises it.
func successEaseFactor(current float64, quality domain.Quality, params *Params) float64 {
	miss := float64(domain.MaxQuality - quality)
	return clampEase(current+(0.1-miss*(0.08+miss*0.02)), params)
}

// failureEaseFactor applies the flat failure penalty, floored at the
// configured minimum so one bad response cannot flatten a word permanently.
func failureEaseFactor(current float64, params *Params) float64 {
	return clampEase(current-params.FailureEasePenalty, params)
}

func clampEase(ease float64, params *Params) float64 {
	if ease < params.MinEaseFactor {
		return params.MinEaseFactor
	}
	if ease > params.MaxEaseFactor {
		return params.MaxEaseFactor
	}
	return ease
}

// roundInterval rounds a fractional interval to the nearest whole day,
// halves away from zero.
func roundInterval(days float64) int {
	return int(math.Round(days))
}

// nextProgress computes the full follow-up state for a graded response.
// It never mutates the input record and performs no I/O; the same inputs
// always produce the same output.
//
// The update runs in two tracks. While a word is in the learning stage it
// walks a short fixed step schedule; once it graduates, intervals grow
// multiplicatively with the ease factor. A failing response (quality < 3)
// always drops the word back to the first learning step.
func nextProgress(
	progress *domain.WordProgress,
	quality domain.Quality,
	now time.Time,
	params *Params,
) *domain.WordProgress {
	next := progress.Clone()

	if quality.IsCorrect() {
		next.CorrectCount++
	} else {
		next.WrongCount++
	}

	next.LastReviewedAt = now
	next.UpdatedAt = now

	if !quality.IsCorrect() {
		// Failure: short reset step, no further interval math.
		next.EaseFactor = failureEaseFactor(progress.EaseFactor, params)
		next.Interval = params.LearningSteps[0]
		next.Repetitions = 0
		next.Status = domain.StatusLearning
		next.NextReviewAt = now.AddDate(0, 0, next.Interval)
		return next
	}

	next.EaseFactor = successEaseFactor(progress.EaseFactor, quality, params)
	next.Repetitions++

	switch progress.Status {
	case domain.StatusNew, domain.StatusLearning:
		if next.Repetitions < len(params.LearningSteps) {
			next.Interval = params.LearningSteps[next.Repetitions]
			next.Status = domain.StatusLearning
		} else {
			// Graduation out of the fixed steps.
			next.Interval = params.GraduatingInterval
			next.Status = domain.StatusReview
			if quality == domain.MaxQuality {
				next.Interval = roundInterval(float64(next.Interval) * params.EasyBonus)
			}
		}
	default:
		// Review and Learned words share the multiplicative track.
		// The repetition-indexed base intervals cover records that re-enter
		// the track with a reset count, e.g. after a bulk import.
		switch next.Repetitions {
		case 1:
			next.Interval = 1
		case 2:
			next.Interval = 6
		default:
			next.Interval = roundInterval(float64(progress.Interval) * next.EaseFactor)
		}
		if quality == domain.MaxQuality {
			next.Interval = roundInterval(float64(next.Interval) * params.EasyBonus)
		}
	}

	if next.Interval > params.MaxInterval {
		next.Interval = params.MaxInterval
	}

	// The learned label is forward-only; only a failure reverts it,
	// by forcing the word back to the learning branch above.
	if next.Interval > params.LearnedThreshold {
		next.Status = domain.StatusLearned
	}

	next.NextReviewAt = now.AddDate(0, 0, next.Interval)
	return next
}
