// Package cli implements the terminal reports and exports of the studysaathi command.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/studysaathi/studysaathi/internal/progress"
	"github.com/studysaathi/studysaathi/internal/statistics"
	"github.com/studysaathi/studysaathi/internal/streak"
	"github.com/studysaathi/studysaathi/internal/strength"
)

type ProgressSource interface {
	TopicProgress(ctx context.Context, userID, subject string) (*progress.Overview, error)
	Recommendations(ctx context.Context, userID string) (*progress.Recommendations, error)
}

type StreakSource interface {
	Get(ctx context.Context, userID string) (*streak.Status, error)
}

// ProgressReport is everything known about the progress of one user.
type ProgressReport struct {
	UserID          string                      `json:"userId" yaml:"user_id"`
	Topics          []progress.TopicProgress    `json:"topics" yaml:"topics"`
	Statistics      statistics.StatisticsResult `json:"statistics" yaml:"statistics"`
	Recommendations *progress.Recommendations   `json:"recommendations" yaml:"recommendations"`
	Streak          *streak.Status              `json:"streak" yaml:"streak"`
}

// LoadProgressReport reads the progress, recommendations and streak of userID.
// subject limits the topics and statistics to one subject when set.
func LoadProgressReport(ctx context.Context, userID, subject string, progressSource ProgressSource, streaks StreakSource) (*ProgressReport, error) {
	overview, err := progressSource.TopicProgress(ctx, userID, subject)
	if err != nil {
		return nil, fmt.Errorf("TopicProgress() > %w", err)
	}
	recommendations, err := progressSource.Recommendations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("Recommendations() > %w", err)
	}
	status, err := streaks.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("streaks.Get() > %w", err)
	}

	return &ProgressReport{
		UserID:          userID,
		Topics:          overview.Topics,
		Statistics:      statistics.CalculateStatistics(overview.Topics),
		Recommendations: recommendations,
		Streak:          status,
	}, nil
}

var labelColors = map[strength.Label]*color.Color{
	strength.LabelStrong: color.New(color.FgGreen),
	strength.LabelMedium: color.New(color.FgYellow),
	strength.LabelWeak:   color.New(color.FgRed),
}

var priorityColors = map[progress.Priority]*color.Color{
	progress.PriorityHigh:   color.New(color.FgRed),
	progress.PriorityMedium: color.New(color.FgYellow),
	progress.PriorityLow:    color.New(color.FgGreen),
}

// WriteProgressReport prints report as a coloured table.
func WriteProgressReport(w io.Writer, report *ProgressReport) {
	bold := color.New(color.Bold)

	bold.Fprintf(w, "Progress Report: %s\n", report.UserID)
	fmt.Fprintln(w, "==========================")
	fmt.Fprintln(w)

	if report.Streak != nil {
		fmt.Fprintf(w, "Streak: %d days (longest %d)", report.Streak.CurrentStreak, report.Streak.LongestStreak)
		if report.Streak.StudiedToday {
			color.New(color.FgGreen).Fprint(w, ", studied today")
		}
		fmt.Fprintln(w)
		if report.Streak.Message != "" {
			fmt.Fprintln(w, report.Streak.Message)
		}
		fmt.Fprintln(w)
	}

	if len(report.Topics) == 0 {
		fmt.Fprintln(w, "No topics tracked yet.")
		return
	}

	for _, subject := range report.Statistics.Subjects {
		bold.Fprintf(w, "%s", subject.Subject)
		fmt.Fprintf(w, "  avg %.0f, confidence %d/5, %d min, %d notes\n",
			subject.AverageScore, subject.Confidence, subject.TimeSpentMinutes, subject.NotesCount)
		fmt.Fprintf(w, "  %-32s  %-8s  %5s\n", "Topic", "Strength", "Score")
		for _, topic := range subject.Topics {
			fmt.Fprintf(w, "  %-32s  ", topic.Topic)
			labelColors[topic.Strength].Fprintf(w, "%-8s", topic.Strength)
			fmt.Fprintf(w, "  %5d\n", topic.Score)
		}
		fmt.Fprintln(w)
	}

	aggregate := report.Statistics.Aggregate
	fmt.Fprintf(w, "%-10s %d topics, %d min, %d notes, avg %.1f\n", "Totals:",
		aggregate.TopicsCount, aggregate.TimeSpentMinutes, aggregate.NotesCount, aggregate.AverageScore)

	if report.Recommendations == nil || len(report.Recommendations.Recommendations) == 0 {
		return
	}
	fmt.Fprintln(w)
	bold.Fprintln(w, "Recommendations")
	for _, rec := range report.Recommendations.Recommendations {
		fmt.Fprint(w, "  ")
		priorityColors[rec.Priority].Fprintf(w, "[%-6s]", rec.Priority)
		fmt.Fprintf(w, " %s / %s: %s (%d min)\n", rec.Subject, rec.Topic, rec.Reason, rec.SuggestedTime)
	}
}
