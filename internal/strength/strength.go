// Package strength scores a learner's mastery of a single topic.
package strength

import "math"

// Label classifies a strength score.
type Label string

const (
	LabelStrong Label = "strong"
	LabelMedium Label = "medium"
	LabelWeak   Label = "weak"
)

// Weights are the relative contributions of each normalized metric. They should sum to 1.
type Weights struct {
	Time       float64 `mapstructure:"time"`
	Notes      float64 `mapstructure:"notes"`
	Confidence float64 `mapstructure:"confidence"`
	Quiz       float64 `mapstructure:"quiz"`
}

// Config holds the scoring constants.
type Config struct {
	TimeSaturationMinutes float64 `mapstructure:"time_saturation_minutes"`
	NotesSaturation       float64 `mapstructure:"notes_saturation"`
	DefaultConfidence     int     `mapstructure:"default_confidence"`
	StrongThreshold       int     `mapstructure:"strong_threshold"`
	MediumThreshold       int     `mapstructure:"medium_threshold"`
	Weights               Weights `mapstructure:"weights"`
}

// DefaultConfig returns the production scoring constants.
func DefaultConfig() Config {
	return Config{
		TimeSaturationMinutes: 120,
		NotesSaturation:       5,
		DefaultConfidence:     3,
		StrongThreshold:       70,
		MediumThreshold:       40,
		Weights: Weights{
			Time:       0.30,
			Notes:      0.25,
			Confidence: 0.35,
			Quiz:       0.10,
		},
	}
}

const (
	MinConfidence = 1
	MaxConfidence = 5
)

// Metrics are the raw per-topic inputs.
// A zero Confidence means the learner never rated the topic.
type Metrics struct {
	TimeSpentMinutes int
	NotesCount       int
	Confidence       int
	QuizAvgScore     float64
}

// Components are the normalized 0-100 inputs of the weighted sum.
type Components struct {
	Time       float64
	Notes      float64
	Confidence float64
	Quiz       float64
}

// Result is the outcome of scoring a topic.
type Result struct {
	Score      int
	Label      Label
	Components Components
}

// Scorer computes strength scores. It is safe for concurrent use.
type Scorer struct {
	config Config
}

// NewScorer creates a Scorer with the given constants.
func NewScorer(config Config) *Scorer {
	return &Scorer{config: config}
}

// Config returns the constants the scorer was created with.
func (s *Scorer) Config() Config {
	return s.config
}

// Compute scores the metrics. Missing inputs fall back to their defaults.
func (s *Scorer) Compute(metrics Metrics) Result {
	components := s.normalize(metrics)
	w := s.config.Weights

	total := components.Time*w.Time +
		components.Notes*w.Notes +
		components.Confidence*w.Confidence +
		components.Quiz*w.Quiz

	score := int(math.Round(clamp(total, 0, 100)))
	return Result{
		Score:      score,
		Label:      s.Label(score),
		Components: components,
	}
}

// Label maps a score onto its label.
func (s *Scorer) Label(score int) Label {
	switch {
	case score >= s.config.StrongThreshold:
		return LabelStrong
	case score >= s.config.MediumThreshold:
		return LabelMedium
	default:
		return LabelWeak
	}
}

func (s *Scorer) normalize(m Metrics) Components {
	confidence := m.Confidence
	if confidence == 0 {
		confidence = s.config.DefaultConfidence
	}
	confidence = ClampConfidence(confidence)

	return Components{
		Time:       ratio(float64(m.TimeSpentMinutes), s.config.TimeSaturationMinutes),
		Notes:      ratio(float64(m.NotesCount), s.config.NotesSaturation),
		Confidence: float64(confidence-MinConfidence) / float64(MaxConfidence-MinConfidence) * 100,
		Quiz:       clamp(m.QuizAvgScore, 0, 100),
	}
}

// ClampConfidence clamps a self rating into [MinConfidence, MaxConfidence].
func ClampConfidence(confidence int) int {
	return min(max(confidence, MinConfidence), MaxConfidence)
}

// ratio returns value/saturation as a percentage capped at 100.
func ratio(value, saturation float64) float64 {
	if saturation <= 0 || value <= 0 {
		return 0
	}
	return math.Min(value/saturation*100, 100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
