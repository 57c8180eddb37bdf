// Package inference defines the text generation operations used by the study assistant.
package inference

import (
	"context"
	"time"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI text generation
type Client interface {
	GenerateText(ctx context.Context, params TextRequest) (TextResponse, error)
	Chat(ctx context.Context, params ChatRequest) (TextResponse, error)
	GenerateStudyContent(ctx context.Context, params StudyContentRequest) (TextResponse, error)
	AskDoubt(ctx context.Context, params DoubtRequest) (TextResponse, error)
	GenerateStudyPlan(ctx context.Context, params StudyPlanRequest) (StudyPlanResponse, error)
	GenerateSmartLearning(ctx context.Context, params SmartLearningRequest) (Parsed[SmartLearningContent], error)
	// GenerateSmartSuggestions returns at most MaxSmartSuggestions questions.
	GenerateSmartSuggestions(ctx context.Context, params SuggestionRequest) ([]string, error)
	// GeneratePopularTopics returns at most MaxPopularTopics topics.
	GeneratePopularTopics(ctx context.Context, params SuggestionRequest) ([]string, error)
}

const (
	DefaultMaxRetryAttempts = 2
	DefaultMaxTokens        = 2048

	MaxSmartSuggestions = 6
	MaxPopularTopics    = 8
)

// Options tunes a single generation. Zero values use the client defaults.
type Options struct {
	Temperature *float32 `json:"temperature,omitempty"`
	MaxTokens   int      `json:"maxTokens,omitempty"`
}

type TextRequest struct {
	Prompt  string
	Options Options
}

type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

type TextResponse struct {
	Text  string `json:"text"`
	Usage Usage  `json:"usage"`
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessage
	Options  Options
}

// ContentType selects what GenerateStudyContent writes about a topic.
type ContentType string

const (
	ContentExplanation ContentType = "explanation"
	ContentFlashcards  ContentType = "flashcards"
	ContentQuiz        ContentType = "quiz"
	ContentSummary     ContentType = "summary"
	ContentPYQStyle    ContentType = "pyq_style"
)

// ParseContentType falls back to an explanation for unknown types.
func ParseContentType(s string) ContentType {
	switch ct := ContentType(s); ct {
	case ContentExplanation, ContentFlashcards, ContentQuiz, ContentSummary, ContentPYQStyle:
		return ct
	default:
		return ContentExplanation
	}
}

type StudyContentRequest struct {
	Subject     string
	Topic       string
	ContentType ContentType
	Options     Options
}

type DoubtRequest struct {
	Question string
	Subject  string
	Topic    string
	ExamType string
}

// StudyPlanRequest describes the learner a plan is generated for.
// WeakSubjects maps a subject to a confidence from 1 to 5.
type StudyPlanRequest struct {
	ExamName        string
	ExamDate        time.Time
	Subjects        []string
	Topics          map[string][]string
	WeakSubjects    map[string]int
	DailyStudyHours float64
	// Today defaults to the current date.
	Today time.Time
}

type TimetableSlot struct {
	Time     string `json:"time" yaml:"time"`
	Subject  string `json:"subject" yaml:"subject"`
	Activity string `json:"activity" yaml:"activity"`
	Duration string `json:"duration" yaml:"duration"`
}

type WeekSubject struct {
	Name   string   `json:"name" yaml:"name"`
	Topics []string `json:"topics" yaml:"topics"`
	Hours  float64  `json:"hours" yaml:"hours"`
}

type WeekPlan struct {
	Week     int           `json:"week" yaml:"week"`
	Focus    string        `json:"focus" yaml:"focus"`
	Subjects []WeekSubject `json:"subjects" yaml:"subjects"`
}

type RevisionStrategy struct {
	Daily  string   `json:"daily" yaml:"daily"`
	Weekly string   `json:"weekly" yaml:"weekly"`
	Sheets []string `json:"sheets" yaml:"sheets"`
}

// StudyPlan is the structured plan the model is asked to return.
type StudyPlan struct {
	DailyTimetable   []TimetableSlot  `json:"dailyTimetable" yaml:"daily_timetable"`
	WeeklyPlan       []WeekPlan       `json:"weeklyPlan" yaml:"weekly_plan"`
	RevisionStrategy RevisionStrategy `json:"revisionStrategy" yaml:"revision_strategy"`
	ExamTips         []string         `json:"examTips" yaml:"exam_tips"`
	Summary          string           `json:"summary" yaml:"summary"`
}

type PlanMetadata struct {
	ExamName        string    `json:"examName" yaml:"exam_name"`
	ExamDate        string    `json:"examDate" yaml:"exam_date"`
	DaysLeft        int       `json:"daysLeft" yaml:"days_left"`
	WeeksLeft       int       `json:"weeksLeft" yaml:"weeks_left"`
	DailyStudyHours float64   `json:"dailyStudyHours" yaml:"daily_study_hours"`
	GeneratedAt     time.Time `json:"generatedAt" yaml:"generated_at"`
}

type StudyPlanResponse struct {
	Plan     Parsed[StudyPlan]
	Metadata PlanMetadata
}

// SmartLearningTags lists the sections GenerateSmartLearning can write.
var SmartLearningTags = []string{"brief", "detailed", "questions", "analogy", "dosdonts", "exampoints", "quickrevision", "mistakes"}

type SmartLearningRequest struct {
	Topic    string
	Subject  string
	ExamType string
	Tags     []string
}

type SmartLearningContent struct {
	Topic    string            `json:"topic"`
	Sections map[string]string `json:"sections"`
}

type RecentTopic struct {
	Topic   string
	Subject string
}

type SuggestionRequest struct {
	ExamName     string
	Subjects     []string
	Topics       map[string][]string
	WeakSubjects map[string]int
	RecentTopics []RecentTopic
}
