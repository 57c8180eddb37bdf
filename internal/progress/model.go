// Package progress tracks per-topic study metrics and derives study recommendations from them.
package progress

import (
	"time"

	"github.com/studysaathi/studysaathi/internal/strength"
)

// TopicProgress is the stored state of one topic of one user.
type TopicProgress struct {
	ID               int64           `db:"id" json:"-" yaml:"-"`
	UserID           string          `db:"user_id" json:"userId" yaml:"user_id"`
	TopicKey         string          `db:"topic_key" json:"id" yaml:"topic_key"`
	Subject          string          `db:"subject" json:"subject" yaml:"subject"`
	Topic            string          `db:"topic" json:"topic" yaml:"topic"`
	TimeSpentMinutes int             `db:"time_spent_minutes" json:"timeSpentMinutes" yaml:"time_spent_minutes"`
	NotesCount       int             `db:"notes_count" json:"notesCount" yaml:"notes_count"`
	Confidence       *int            `db:"confidence" json:"confidence,omitempty" yaml:"confidence,omitempty"`
	QuizAvgScore     float64         `db:"quiz_avg_score" json:"quizAvgScore" yaml:"quiz_avg_score"`
	StrengthScore    int             `db:"strength_score" json:"strengthScore" yaml:"strength_score"`
	StrengthLabel    *strength.Label `db:"strength_label" json:"strengthLabel,omitempty" yaml:"strength_label,omitempty"`
	LastStudied      *time.Time      `db:"last_studied" json:"lastStudied,omitempty" yaml:"last_studied,omitempty"`
	LastNoteSaved    *time.Time      `db:"last_note_saved" json:"lastNoteSaved,omitempty" yaml:"last_note_saved,omitempty"`
	CreatedAt        time.Time       `db:"created_at" json:"createdAt" yaml:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updatedAt" yaml:"updated_at"`
}

// Metrics returns the scorer inputs of the record.
func (p *TopicProgress) Metrics() strength.Metrics {
	m := strength.Metrics{
		TimeSpentMinutes: p.TimeSpentMinutes,
		NotesCount:       p.NotesCount,
		QuizAvgScore:     p.QuizAvgScore,
	}
	if p.Confidence != nil {
		m.Confidence = *p.Confidence
	}
	return m
}

// Label returns the stored label. Records that were never scored count as weak.
func (p *TopicProgress) Label() strength.Label {
	if p.StrengthLabel == nil || *p.StrengthLabel == "" {
		return strength.LabelWeak
	}
	return *p.StrengthLabel
}

func (p *TopicProgress) applyScore(result strength.Result) {
	label := result.Label
	p.StrengthScore = result.Score
	p.StrengthLabel = &label
}

// TimeResult is returned by Tracker.TrackTimeSpent.
type TimeResult struct {
	TimeSpentMinutes int `json:"timeSpentMinutes"`
	StrengthScore    int `json:"strengthScore"`
}

// NoteResult is returned by Tracker.TrackNoteSaved.
type NoteResult struct {
	NotesCount    int `json:"notesCount"`
	StrengthScore int `json:"strengthScore"`
}

// ConfidenceResult is returned by Tracker.UpdateConfidence.
type ConfidenceResult struct {
	Confidence    int            `json:"confidence"`
	StrengthScore int            `json:"strengthScore"`
	StrengthLabel strength.Label `json:"strengthLabel"`
}

// Grouped splits topics by strength label.
type Grouped struct {
	Strong []TopicProgress `json:"strong" yaml:"strong"`
	Medium []TopicProgress `json:"medium" yaml:"medium"`
	Weak   []TopicProgress `json:"weak" yaml:"weak"`
}

// Overview is the progress of a user, optionally limited to one subject.
type Overview struct {
	Topics  []TopicProgress `json:"topics" yaml:"topics"`
	Grouped Grouped         `json:"grouped" yaml:"grouped"`
}

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation suggests how much time to spend on a topic next.
type Recommendation struct {
	Topic         string   `json:"topic" yaml:"topic"`
	Subject       string   `json:"subject" yaml:"subject"`
	Priority      Priority `json:"priority" yaml:"priority"`
	Reason        string   `json:"reason" yaml:"reason"`
	SuggestedTime int      `json:"suggestedTime" yaml:"suggested_time"`
	StrengthScore int      `json:"strengthScore" yaml:"strength_score"`
}

// Summary counts topics per label.
type Summary struct {
	Total  int `json:"total" yaml:"total"`
	Strong int `json:"strong" yaml:"strong"`
	Medium int `json:"medium" yaml:"medium"`
	Weak   int `json:"weak" yaml:"weak"`
}

// Recommendations is returned by Tracker.Recommendations.
type Recommendations struct {
	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`
	Summary         Summary          `json:"summary" yaml:"summary"`
	Message         string           `json:"message,omitempty" yaml:"message,omitempty"`
}
