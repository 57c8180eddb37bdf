package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"resty.dev/v3"

	"github.com/studysaathi/studysaathi/internal/apperr"
	"github.com/studysaathi/studysaathi/internal/config"
	"github.com/studysaathi/studysaathi/internal/inference"
)

func newTestClient(serverURL string) *Client {
	return &Client{
		httpClient:       resty.New().SetBaseURL(serverURL),
		model:            "gpt-4",
		temperature:      0.7,
		maxRetryAttempts: 1,
		retryDelay:       time.Millisecond,
		logger:           zap.NewNop(),
		now: func() time.Time {
			return time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
		},
	}
}

func writeCompletion(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	require.NoError(t, json.NewEncoder(w).Encode(ChatCompletionResponse{
		ID:      "chatcmpl-123",
		Object:  "chat.completion",
		Created: 1677652288,
		Model:   "gpt-4",
		Choices: []Choice{
			{
				Index:        0,
				Message:      ChoiceMessage{Role: RoleAssistant, Content: content},
				FinishReason: "stop",
			},
		},
		Usage: Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
	}))
}

func decodeRequest(t *testing.T, r *http.Request) ChatCompletionRequest {
	t.Helper()
	var reqBody ChatCompletionRequest
	require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
	return reqBody
}

func TestNewClient(t *testing.T) {
	client := NewClient(config.OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini", MaxRetryAttempts: 2}, zap.NewNop())
	defer func() { _ = client.Close() }()

	assert.Equal(t, "gpt-4o-mini", client.GetModel())
	assert.Equal(t, float32(0.7), client.temperature)
	assert.Equal(t, uint(2), client.maxRetryAttempts)
}

func TestClient_GenerateText(t *testing.T) {
	tests := []struct {
		name              string
		request           inference.TextRequest
		mockServerHandler func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request)

		wantResponse    inference.TextResponse
		wantCalls       int32
		wantError       error
		wantErrorString string
	}{
		{
			name:    "Success with default options",
			request: inference.TextRequest{Prompt: "Explain Ohm's law"},
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/chat/completions", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				reqBody := decodeRequest(t, r)
				assert.Equal(t, "gpt-4", reqBody.Model)
				assert.Equal(t, float32(0.7), reqBody.Temperature)
				assert.Equal(t, 2048, reqBody.MaxTokens)
				require.Len(t, reqBody.Messages, 2)
				assert.Equal(t, RoleSystem, reqBody.Messages[0].Role)
				assert.Equal(t, inference.SystemPrompt, reqBody.Messages[0].Content)
				assert.Equal(t, Message{Role: RoleUser, Content: "Explain Ohm's law"}, reqBody.Messages[1])

				writeCompletion(t, w, "V = IR")
			},
			wantResponse: inference.TextResponse{
				Text:  "V = IR",
				Usage: inference.Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
			},
			wantCalls: 1,
		},
		{
			name: "Custom options override the defaults",
			request: inference.TextRequest{
				Prompt:  "Motivate me",
				Options: inference.Options{Temperature: inference.Float32(0.2), MaxTokens: 150},
			},
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				reqBody := decodeRequest(t, r)
				assert.Equal(t, float32(0.2), reqBody.Temperature)
				assert.Equal(t, 150, reqBody.MaxTokens)
				writeCompletion(t, w, "Keep going!")
			},
			wantResponse: inference.TextResponse{
				Text:  "Keep going!",
				Usage: inference.Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
			},
			wantCalls: 1,
		},
		{
			name:    "Server error is retried",
			request: inference.TextRequest{Prompt: "Explain Ohm's law"},
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				if calls == 1 {
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":"boom"}`))
					return
				}
				writeCompletion(t, w, "V = IR")
			},
			wantResponse: inference.TextResponse{
				Text:  "V = IR",
				Usage: inference.Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
			},
			wantCalls: 2,
		},
		{
			name:    "Rate limit exhausts the retries",
			request: inference.TextRequest{Prompt: "Explain Ohm's law"},
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"slow down"}`))
			},
			wantCalls:       2,
			wantError:       apperr.ErrExternalService,
			wantErrorString: "response error 429",
		},
		{
			name:    "Bad request is not retried",
			request: inference.TextRequest{Prompt: "Explain Ohm's law"},
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"invalid model"}`))
			},
			wantCalls:       1,
			wantError:       apperr.ErrExternalService,
			wantErrorString: "response error 400",
		},
		{
			name:    "Response without choices",
			request: inference.TextRequest{Prompt: "Explain Ohm's law"},
			mockServerHandler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":"chatcmpl-123","choices":[]}`))
			},
			wantCalls:       1,
			wantError:       apperr.ErrExternalService,
			wantErrorString: "no choices",
		},
		{
			name:            "Empty prompt is rejected before calling the API",
			request:         inference.TextRequest{Prompt: "  "},
			wantCalls:       0,
			wantError:       apperr.ErrValidation,
			wantErrorString: "prompt is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := calls.Add(1)
				tt.mockServerHandler(t, n, w, r)
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			got, err := client.GenerateText(context.Background(), tt.request)

			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantError)
				assert.Contains(t, err.Error(), tt.wantErrorString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantResponse, got)
		})
	}
}

func TestClient_Chat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqBody := decodeRequest(t, r)
		assert.Equal(t, []Message{
			{Role: RoleSystem, Content: inference.SystemPrompt},
			{Role: RoleUser, Content: "What is inertia?"},
			{Role: RoleAssistant, Content: "Resistance to change in motion."},
			{Role: RoleUser, Content: "Give an example"},
		}, reqBody.Messages)
		writeCompletion(t, w, "A bus stopping suddenly.")
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	got, err := client.Chat(context.Background(), inference.ChatRequest{
		Messages: []inference.ChatMessage{
			{Role: inference.RoleUser, Content: "What is inertia?"},
			{Role: inference.RoleAssistant, Content: "Resistance to change in motion."},
			{Role: "unknown", Content: "Give an example"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "A bus stopping suddenly.", got.Text)

	_, err = client.Chat(context.Background(), inference.ChatRequest{})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestClient_GenerateStudyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqBody := decodeRequest(t, r)
		assert.Contains(t, reqBody.Messages[1].Content, `Create 5 flashcards on "Kinematics" in Physics`)
		writeCompletion(t, w, "Q: What is velocity?\nA: Rate of change of displacement.")
	}))
	defer server.Close()

	got, err := newTestClient(server.URL).GenerateStudyContent(context.Background(), inference.StudyContentRequest{
		Subject:     "Physics",
		Topic:       "Kinematics",
		ContentType: inference.ContentFlashcards,
	})
	require.NoError(t, err)
	assert.Contains(t, got.Text, "velocity")
}

func TestClient_AskDoubt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqBody := decodeRequest(t, r)
		assert.Contains(t, reqBody.Messages[1].Content, "Context: Exam: NEET, Subject: Biology")
		assert.Contains(t, reqBody.Messages[1].Content, "Student's doubt: Why is the mitochondria the powerhouse?")
		writeCompletion(t, w, "Because it makes ATP.")
	}))
	defer server.Close()

	got, err := newTestClient(server.URL).AskDoubt(context.Background(), inference.DoubtRequest{
		Question: "Why is the mitochondria the powerhouse?",
		Subject:  "Biology",
		ExamType: "NEET",
	})
	require.NoError(t, err)
	assert.Equal(t, "Because it makes ATP.", got.Text)
}

func TestClient_GenerateStudyPlan(t *testing.T) {
	request := inference.StudyPlanRequest{
		ExamName:        "JEE Main",
		ExamDate:        time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
		Subjects:        []string{"Physics", "Maths"},
		Topics:          map[string][]string{"Physics": {"Optics"}},
		WeakSubjects:    map[string]int{"Physics": 2},
		DailyStudyHours: 4,
	}
	wantMetadata := inference.PlanMetadata{
		ExamName:        "JEE Main",
		ExamDate:        "2026-02-09",
		DaysLeft:        30,
		WeeksLeft:       5,
		DailyStudyHours: 4,
		GeneratedAt:     time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		content   string
		wantPlan  *inference.StudyPlan
		wantRawOK bool
	}{
		{
			name: "JSON wrapped in prose is parsed",
			content: "Here is your plan:\n```json\n" + `{
  "dailyTimetable": [{"time": "6:00 AM - 7:00 AM", "subject": "Physics", "activity": "Theory", "duration": "60 min"}],
  "weeklyPlan": [{"week": 1, "focus": "Foundation", "subjects": [{"name": "Physics", "topics": ["Optics"], "hours": 10}]}],
  "revisionStrategy": {"daily": "20 min recap", "weekly": "Sunday mock", "sheets": ["Formula sheet"]},
  "examTips": ["Attempt easy questions first"],
  "summary": "You can do this!"
}` + "\n```",
			wantPlan: &inference.StudyPlan{
				DailyTimetable: []inference.TimetableSlot{{Time: "6:00 AM - 7:00 AM", Subject: "Physics", Activity: "Theory", Duration: "60 min"}},
				WeeklyPlan: []inference.WeekPlan{{
					Week:     1,
					Focus:    "Foundation",
					Subjects: []inference.WeekSubject{{Name: "Physics", Topics: []string{"Optics"}, Hours: 10}},
				}},
				RevisionStrategy: inference.RevisionStrategy{Daily: "20 min recap", Weekly: "Sunday mock", Sheets: []string{"Formula sheet"}},
				ExamTips:         []string{"Attempt easy questions first"},
				Summary:          "You can do this!",
			},
		},
		{
			name:     "Prose only keeps the raw plan",
			content:  "Week 1: revise optics. Week 2: mock tests.",
			wantPlan: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reqBody := decodeRequest(t, r)
				assert.Equal(t, 4096, reqBody.MaxTokens)
				assert.Contains(t, reqBody.Messages[1].Content, "Exam Date: 2026-02-09 (30 days left, ~5 weeks)")
				assert.Contains(t, reqBody.Messages[1].Content, "- Physics: Optics [Confidence: 2/5, HIGH PRIORITY (Weak)]")
				assert.Contains(t, reqBody.Messages[1].Content, "- Maths: General topics [Confidence: 3/5, Medium priority]")
				writeCompletion(t, w, tt.content)
			}))
			defer server.Close()

			got, err := newTestClient(server.URL).GenerateStudyPlan(context.Background(), request)
			require.NoError(t, err)
			assert.Equal(t, wantMetadata, got.Metadata)
			assert.Equal(t, tt.wantPlan, got.Plan.Structured)
			assert.Equal(t, tt.content, got.Plan.Raw)
		})
	}
}

func TestClient_GenerateSmartLearning(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqBody := decodeRequest(t, r)
		assert.Contains(t, reqBody.Messages[1].Content, "BRIEF EXPLANATION")
		assert.Contains(t, reqBody.Messages[1].Content, "COMMON MISTAKES")
		assert.NotContains(t, reqBody.Messages[1].Content, "REAL-LIFE ANALOGY")
		writeCompletion(t, w, `{"topic": "Photosynthesis", "sections": {"brief": "Plants make food", "mistakes": "Mixing up stages"}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	got, err := client.GenerateSmartLearning(context.Background(), inference.SmartLearningRequest{
		Topic: "Photosynthesis",
		Tags:  []string{"brief", "unknown", "mistakes"},
	})
	require.NoError(t, err)
	require.True(t, got.OK())
	assert.Equal(t, inference.SmartLearningContent{
		Topic:    "Photosynthesis",
		Sections: map[string]string{"brief": "Plants make food", "mistakes": "Mixing up stages"},
	}, *got.Structured)

	_, err = client.GenerateSmartLearning(context.Background(), inference.SmartLearningRequest{
		Topic: "Photosynthesis",
		Tags:  []string{"unknown"},
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestClient_GenerateSmartSuggestions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "JSON array is truncated to six",
			content: `["q1?", "q2?", "q3?", "q4?", "q5?", "q6?", "q7?", "q8?"]`,
			want:    []string{"q1?", "q2?", "q3?", "q4?", "q5?", "q6?"},
		},
		{
			name:    "Question lines are extracted when there is no JSON",
			content: "Here you go:\n1. How do I balance redox equations?\n2. \"What is the best way to revise organic chemistry?\"\nGood luck",
			want: []string{
				"How do I balance redox equations?",
				"What is the best way to revise organic chemistry?",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reqBody := decodeRequest(t, r)
				assert.Equal(t, float32(0.8), reqBody.Temperature)
				assert.Equal(t, 1024, reqBody.MaxTokens)
				writeCompletion(t, w, tt.content)
			}))
			defer server.Close()

			got, err := newTestClient(server.URL).GenerateSmartSuggestions(context.Background(), inference.SuggestionRequest{
				ExamName: "JEE",
				Subjects: []string{"Chemistry"},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_GeneratePopularTopics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqBody := decodeRequest(t, r)
		assert.Equal(t, 512, reqBody.MaxTokens)
		assert.Contains(t, reqBody.Messages[1].Content, "Recently studied: Optics (Physics)")
		writeCompletion(t, w, "1. Newton's Laws of Motion\n2. \"Electrostatics\",\nok")
	}))
	defer server.Close()

	got, err := newTestClient(server.URL).GeneratePopularTopics(context.Background(), inference.SuggestionRequest{
		Subjects:     []string{"Physics"},
		RecentTopics: []inference.RecentTopic{{Topic: "Optics", Subject: "Physics"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Newtons Laws of Motion", "Electrostatics"}, got)
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "server error", err: &responseError{StatusCode: 503}, want: true},
		{name: "rate limited", err: &responseError{StatusCode: 429}, want: true},
		{name: "unauthorized", err: &responseError{StatusCode: 401}, want: false},
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:1: connect: connection refused"), want: true},
		{name: "unknown error", err: assert.AnError, want: false},
		{name: "context canceled", err: context.Canceled, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}
