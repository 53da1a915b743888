package srs

// Params defines all configurable parameters for the scheduling algorithm.
type Params struct {
	// Core ease factor limits. MaxEaseFactor defaults to the same value as
	// DefaultEaseFactor, which means ease never rises above its starting
	// point; deployments that want the classic SM-2 behavior can raise the
	// ceiling independently.
	MinEaseFactor     float64
	MaxEaseFactor     float64
	DefaultEaseFactor float64

	// FailureEasePenalty is subtracted from the ease factor on every failed
	// response, floored at MinEaseFactor.
	FailureEasePenalty float64

	// LearningSteps is the fixed day schedule a word walks through before
	// graduating. Index 0 is also the reset step after a failure.
	LearningSteps []int

	// GraduatingInterval is assigned when a word leaves the learning steps.
	GraduatingInterval int

	// EasyBonus multiplies the computed interval when the learner grades a
	// recall as maximally easy.
	EasyBonus float64

	// MaxInterval caps every computed interval, in days.
	MaxInterval int

	// LearnedThreshold is the interval, in days, above which a word is
	// labeled learned. The label does not change the interval math.
	LearnedThreshold int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero-valued fields keep their defaults.
type ParamsConfig struct {
	MinEaseFactor      float64
	MaxEaseFactor      float64
	DefaultEaseFactor  float64
	FailureEasePenalty float64
	LearningSteps      []int
	GraduatingInterval int
	EasyBonus          float64
	MaxInterval        int
	LearnedThreshold   int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:      1.3,
		MaxEaseFactor:      2.5,
		DefaultEaseFactor:  2.5,
		FailureEasePenalty: 0.2,
		LearningSteps:      []int{1, 3},
		GraduatingInterval: 7,
		EasyBonus:          1.3,
		MaxInterval:        365,
		LearnedThreshold:   21,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.MaxEaseFactor > 0 {
		params.MaxEaseFactor = config.MaxEaseFactor
	}
	if config.DefaultEaseFactor > 0 {
		params.DefaultEaseFactor = config.DefaultEaseFactor
	}
	if config.FailureEasePenalty > 0 {
		params.FailureEasePenalty = config.FailureEasePenalty
	}
	if len(config.LearningSteps) > 0 {
		params.LearningSteps = config.LearningSteps
	}
	if config.GraduatingInterval > 0 {
		params.GraduatingInterval = config.GraduatingInterval
	}
	if config.EasyBonus > 0 {
		params.EasyBonus = config.EasyBonus
	}
	if config.MaxInterval > 0 {
		params.MaxInterval = config.MaxInterval
	}
	if config.LearnedThreshold > 0 {
		params.LearnedThreshold = config.LearnedThreshold
	}

	return params
}
