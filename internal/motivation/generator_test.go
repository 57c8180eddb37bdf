package motivation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/studysaathi/studysaathi/internal/inference"
	mock_inference "github.com/studysaathi/studysaathi/internal/mocks/inference"
	"github.com/studysaathi/studysaathi/internal/streak"
)

func intPtr(v int) *int {
	return &v
}

func TestGenerator_Generate(t *testing.T) {
	msgCtx := streak.MessageContext{CurrentStreak: 3, LongestStreak: 5, ExamName: "JEE"}

	tests := []struct {
		name        string
		response    inference.TextResponse
		responseErr error
		pick        int
		want        string
	}{
		{
			name:     "generated text is trimmed",
			response: inference.TextResponse{Text: "  🔥 Three days strong, keep it up!\n"},
			want:     "🔥 Three days strong, keep it up!",
		},
		{
			name:        "generation error falls back to a canned message",
			responseErr: errors.New("response error 503"),
			pick:        1,
			want:        "💪 Consistency is key! Your dedication will pay off.",
		},
		{
			name:     "empty text falls back to a canned message",
			response: inference.TextResponse{Text: "   "},
			pick:     3,
			want:     "📚 Small steps daily lead to big achievements. Keep it up!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockClient := mock_inference.NewMockClient(ctrl)
			mockClient.EXPECT().
				GenerateText(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, params inference.TextRequest) (inference.TextResponse, error) {
					assert.Equal(t, Prompt(msgCtx), params.Prompt)
					assert.Equal(t, float32(0.8), *params.Options.Temperature)
					assert.Equal(t, 150, params.Options.MaxTokens)
					return tt.response, tt.responseErr
				})

			generator := NewGenerator(mockClient, zap.NewNop())
			generator.pick = func(n int) int {
				assert.Equal(t, len(fallbackMessages), n)
				return tt.pick
			}

			assert.Equal(t, tt.want, generator.Generate(context.Background(), msgCtx))
		})
	}
}

func TestGenerator_Generate_FallbackIsAlwaysCanned(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mock_inference.NewMockClient(ctrl)
	mockClient.EXPECT().
		GenerateText(gomock.Any(), gomock.Any()).
		Return(inference.TextResponse{}, errors.New("boom")).
		Times(20)

	generator := NewGenerator(mockClient, zap.NewNop())
	for range 20 {
		assert.Contains(t, fallbackMessages, generator.Generate(context.Background(), streak.MessageContext{}))
	}
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name       string
		msgCtx     streak.MessageContext
		want       []string
		wantAbsent []string
	}{
		{
			name:       "broken streak",
			msgCtx:     streak.MessageContext{CurrentStreak: 0, LongestStreak: 12},
			want:       []string{"preparing for competitive exams", "start fresh today", "Current streak: 0 days", "Longest streak: 12 days"},
			wantAbsent: []string{"Student name", "urgency"},
		},
		{
			name:   "first day",
			msgCtx: streak.MessageContext{CurrentStreak: 1, LongestStreak: 1, UserName: "Asha"},
			want:   []string{"just started their streak", "Student name: Asha"},
		},
		{
			name:   "short streak",
			msgCtx: streak.MessageContext{CurrentStreak: 6, ExamName: "NEET"},
			want:   []string{"preparing for NEET", "6-day streak. Encourage consistency."},
		},
		{
			name:   "week long streak",
			msgCtx: streak.MessageContext{CurrentStreak: 7},
			want:   []string{"Amazing 7-day streak!"},
		},
		{
			name:   "champion streak",
			msgCtx: streak.MessageContext{CurrentStreak: 30},
			want:   []string{"Incredible 30-day streak! They are a champion."},
		},
		{
			name:   "exam is close",
			msgCtx: streak.MessageContext{CurrentStreak: 2, DaysToExam: intPtr(12)},
			want:   []string{"Exam is in 12 days"},
		},
		{
			name:       "exam is far away",
			msgCtx:     streak.MessageContext{CurrentStreak: 2, DaysToExam: intPtr(30)},
			wantAbsent: []string{"Exam is in"},
		},
		{
			name:       "exam day has passed",
			msgCtx:     streak.MessageContext{CurrentStreak: 2, DaysToExam: intPtr(0)},
			wantAbsent: []string{"Exam is in"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prompt(tt.msgCtx)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
			for _, absent := range tt.wantAbsent {
				assert.NotContains(t, got, absent)
			}
		})
	}
}
