package domain

// Quality is the learner's 0..5 grade of how well a word was recalled.
// 0 is a total blackout, 5 is a perfect, effortless recall.
type Quality int

// Quality bounds and the pass threshold. A response grades as correct when
// quality is at least QualityPassThreshold; anything below is a failure that
// resets the word to the learning stage.
const (
	MinQuality           Quality = 0
	MaxQuality           Quality = 5
	QualityPassThreshold Quality = 3
)

// IsValid reports whether q is within the accepted 0..5 range.
func (q Quality) IsValid() bool {
	return q >= MinQuality && q <= MaxQuality
}

// IsCorrect reports whether the response counts as a successful recall.
func (q Quality) IsCorrect() bool {
	return q >= QualityPassThreshold
}
