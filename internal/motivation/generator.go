// Package motivation writes the short encouragement stored with a study streak.
package motivation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/studysaathi/studysaathi/internal/inference"
	"github.com/studysaathi/studysaathi/internal/streak"
)

const (
	temperature = 0.8
	maxTokens   = 150

	urgentDaysToExam = 30
)

var fallbackMessages = []string{
	"🌟 Every day you study brings you closer to your dreams. Keep going!",
	"💪 Consistency is key! Your dedication will pay off.",
	"🎯 Focus on progress, not perfection. You're doing great!",
	"📚 Small steps daily lead to big achievements. Keep it up!",
}

// Generator implements streak.MessageGenerator with a text generation client.
type Generator struct {
	client inference.Client
	logger *zap.Logger
	pick   func(n int) int
}

var _ streak.MessageGenerator = (*Generator)(nil)

func NewGenerator(client inference.Client, logger *zap.Logger) *Generator {
	return &Generator{
		client: client,
		logger: logger,
		pick:   rand.IntN,
	}
}

// Generate never fails. A canned message is returned when generation fails or is empty.
func (g *Generator) Generate(ctx context.Context, msgCtx streak.MessageContext) string {
	response, err := g.client.GenerateText(ctx, inference.TextRequest{
		Prompt: Prompt(msgCtx),
		Options: inference.Options{
			Temperature: inference.Float32(temperature),
			MaxTokens:   maxTokens,
		},
	})
	if err != nil {
		g.logger.Warn("failed to generate a motivational message", zap.Error(err))
		return g.fallback()
	}
	if text := strings.TrimSpace(response.Text); text != "" {
		return text
	}
	return g.fallback()
}

func (g *Generator) fallback() string {
	return fallbackMessages[g.pick(len(fallbackMessages))]
}

func situation(msgCtx streak.MessageContext) string {
	var s string
	switch n := msgCtx.CurrentStreak; {
	case n <= 0:
		s = "Student missed yesterday. Encourage them to start fresh today."
	case n == 1:
		s = "Student just started their streak. Motivate them to keep going."
	case n < 7:
		s = fmt.Sprintf("Student has a %d-day streak. Encourage consistency.", n)
	case n < 30:
		s = fmt.Sprintf("Amazing %d-day streak! Celebrate their dedication.", n)
	default:
		s = fmt.Sprintf("Incredible %d-day streak! They are a champion.", n)
	}

	if days := msgCtx.DaysToExam; days != nil && *days > 0 && *days < urgentDaysToExam {
		s += fmt.Sprintf(" Exam is in %d days, so add urgency but stay positive.", *days)
	}
	return s
}

// Prompt builds the generation prompt for msgCtx.
func Prompt(msgCtx streak.MessageContext) string {
	examName := msgCtx.ExamName
	if examName == "" {
		examName = "competitive exams"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a short motivational message (2-3 sentences at most) for an Indian student preparing for %s.\n\n", examName)
	fmt.Fprintf(&b, "Context: %s\n", situation(msgCtx))
	if msgCtx.UserName != "" {
		fmt.Fprintf(&b, "Student name: %s\n", msgCtx.UserName)
	}
	fmt.Fprintf(&b, "Current streak: %d days\n", msgCtx.CurrentStreak)
	fmt.Fprintf(&b, "Longest streak: %d days\n", msgCtx.LongestStreak)
	b.WriteString(`
Guidelines:
- Simple Indian English, warm like a supportive elder sibling
- Include one relevant emoji
- If the streak broke, be understanding and never harsh
- Mention their progress or exam when it fits

Return ONLY the message.`)
	return b.String()
}
