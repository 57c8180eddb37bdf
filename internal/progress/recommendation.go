package progress

import (
	"context"
)

const noTopicsMessage = "No topics tracked yet"

type policy struct {
	priority      Priority
	reason        string
	suggestedTime int
}

var policies = []struct {
	topics func(Grouped) []TopicProgress
	policy
}{
	{func(g Grouped) []TopicProgress { return g.Weak }, policy{PriorityHigh, "Needs more practice", 45}},
	{func(g Grouped) []TopicProgress { return g.Medium }, policy{PriorityMedium, "Good progress, keep practicing", 30}},
	{func(g Grouped) []TopicProgress { return g.Strong }, policy{PriorityLow, "Quick revision recommended", 15}},
}

// Recommendations ranks every topic of a user: weak topics first, then medium, then strong.
// Within a priority the stored order is kept.
func (t *Tracker) Recommendations(ctx context.Context, userID string) (*Recommendations, error) {
	overview, err := t.TopicProgress(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	if len(overview.Topics) == 0 {
		return &Recommendations{
			Recommendations: []Recommendation{},
			Message:         noTopicsMessage,
		}, nil
	}

	recommendations := make([]Recommendation, 0, len(overview.Topics))
	for _, p := range policies {
		for _, topic := range p.topics(overview.Grouped) {
			recommendations = append(recommendations, Recommendation{
				Topic:         topic.Topic,
				Subject:       topic.Subject,
				Priority:      p.priority,
				Reason:        p.reason,
				SuggestedTime: p.suggestedTime,
				StrengthScore: topic.StrengthScore,
			})
		}
	}

	return &Recommendations{
		Recommendations: recommendations,
		Summary: Summary{
			Total:  len(overview.Topics),
			Strong: len(overview.Grouped.Strong),
			Medium: len(overview.Grouped.Medium),
			Weak:   len(overview.Grouped.Weak),
		},
	}, nil
}
