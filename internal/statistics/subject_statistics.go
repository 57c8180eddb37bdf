package statistics

import (
	"math"
	"sort"

	"github.com/studysaathi/studysaathi/internal/progress"
	"github.com/studysaathi/studysaathi/internal/strength"
)

// TopicStrength is the strength of one topic within a subject breakdown.
type TopicStrength struct {
	Topic    string         `json:"topic" yaml:"topic"`
	Strength strength.Label `json:"strength" yaml:"strength"`
	Score    int            `json:"score" yaml:"score"`
}

// SubjectStatistics holds the progress totals of one subject
type SubjectStatistics struct {
	Subject          string          `json:"subject" yaml:"subject"`
	Topics           []TopicStrength `json:"topics" yaml:"topics"`
	AverageScore     float64         `json:"averageScore" yaml:"average_score"`
	Confidence       int             `json:"confidence" yaml:"confidence"`
	TimeSpentMinutes int             `json:"timeSpentMinutes" yaml:"time_spent_minutes"`
	NotesCount       int             `json:"notesCount" yaml:"notes_count"`
	Strong           int             `json:"strong" yaml:"strong"`
	Medium           int             `json:"medium" yaml:"medium"`
	Weak             int             `json:"weak" yaml:"weak"`
}

// AggregateStatistics holds totals across all subjects
type AggregateStatistics struct {
	TopicsCount      int     `json:"topicsCount" yaml:"topics_count"`
	TimeSpentMinutes int     `json:"timeSpentMinutes" yaml:"time_spent_minutes"`
	NotesCount       int     `json:"notesCount" yaml:"notes_count"`
	AverageScore     float64 `json:"averageScore" yaml:"average_score"`
}

// StatisticsResult holds both per-subject and aggregate statistics
type StatisticsResult struct {
	Subjects  []SubjectStatistics `json:"subjects" yaml:"subjects"`
	Aggregate AggregateStatistics `json:"aggregate" yaml:"aggregate"`
}

// ConfidenceFromScore maps an average strength score (0-100) onto a confidence of 1 to 5.
func ConfidenceFromScore(averageScore float64) int {
	return int(math.Round(averageScore/100*4)) + 1
}

// CalculateStatistics groups topic progress by subject.
// Subjects are sorted by name and topics keep their input order.
func CalculateStatistics(topics []progress.TopicProgress) StatisticsResult {
	bySubject := make(map[string]*SubjectStatistics)
	totalScore := 0
	result := StatisticsResult{}

	for _, topic := range topics {
		stats := bySubject[topic.Subject]
		if stats == nil {
			stats = &SubjectStatistics{Subject: topic.Subject}
			bySubject[topic.Subject] = stats
		}

		label := topic.Label()
		stats.Topics = append(stats.Topics, TopicStrength{
			Topic:    topic.Topic,
			Strength: label,
			Score:    topic.StrengthScore,
		})
		stats.TimeSpentMinutes += topic.TimeSpentMinutes
		stats.NotesCount += topic.NotesCount
		switch label {
		case strength.LabelStrong:
			stats.Strong++
		case strength.LabelMedium:
			stats.Medium++
		default:
			stats.Weak++
		}

		totalScore += topic.StrengthScore
		result.Aggregate.TopicsCount++
		result.Aggregate.TimeSpentMinutes += topic.TimeSpentMinutes
		result.Aggregate.NotesCount += topic.NotesCount
	}

	result.Subjects = make([]SubjectStatistics, 0, len(bySubject))
	for _, stats := range bySubject {
		sum := 0
		for _, t := range stats.Topics {
			sum += t.Score
		}
		stats.AverageScore = float64(sum) / float64(len(stats.Topics))
		stats.Confidence = ConfidenceFromScore(stats.AverageScore)
		result.Subjects = append(result.Subjects, *stats)
	}
	sort.Slice(result.Subjects, func(i, j int) bool {
		return result.Subjects[i].Subject < result.Subjects[j].Subject
	})

	if result.Aggregate.TopicsCount > 0 {
		result.Aggregate.AverageScore = float64(totalScore) / float64(result.Aggregate.TopicsCount)
	}
	return result
}

// SubjectConfidence returns the confidence of every subject.
func (r StatisticsResult) SubjectConfidence() map[string]int {
	confidence := make(map[string]int, len(r.Subjects))
	for _, s := range r.Subjects {
		confidence[s.Subject] = s.Confidence
	}
	return confidence
}

// TopicBreakdown returns the topic strengths of every subject.
func (r StatisticsResult) TopicBreakdown() map[string][]TopicStrength {
	breakdown := make(map[string][]TopicStrength, len(r.Subjects))
	for _, s := range r.Subjects {
		breakdown[s.Subject] = s.Topics
	}
	return breakdown
}
