package openai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
	"resty.dev/v3"

	"github.com/studysaathi/studysaathi/internal/apperr"
	"github.com/studysaathi/studysaathi/internal/config"
	"github.com/studysaathi/studysaathi/internal/inference"
)

const (
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultTemperature = 0.7
	retryDelay         = time.Second
)

type Client struct {
	httpClient       *resty.Client
	model            string
	temperature      float32
	maxRetryAttempts uint
	retryDelay       time.Duration
	logger           *zap.Logger
	now              func() time.Time
}

func NewClient(cfg config.OpenAIConfig, logger *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            cfg.Model,
		temperature:      temperature,
		maxRetryAttempts: cfg.MaxRetryAttempts,
		retryDelay:       retryDelay,
		logger:           logger.Named("openai"),
		now:              time.Now,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// responseError is returned for non 2xx responses.
type responseError struct {
	StatusCode int
	Body       string
}

func (e *responseError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Body)
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var respErr *responseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusTooManyRequests || respErr.StatusCode >= http.StatusInternalServerError
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "EOF")
}

func (client *Client) complete(ctx context.Context, messages []Message, options inference.Options) (inference.TextResponse, error) {
	body := ChatCompletionRequest{
		Model:       client.model,
		Messages:    append([]Message{{Role: RoleSystem, Content: inference.SystemPrompt}}, messages...),
		Temperature: client.temperature,
		MaxTokens:   inference.DefaultMaxTokens,
	}
	if options.Temperature != nil {
		body.Temperature = *options.Temperature
	}
	if options.MaxTokens > 0 {
		body.MaxTokens = options.MaxTokens
	}

	var result inference.TextResponse
	err := retry.Do(
		func() error {
			response, err := client.post(ctx, body)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return time.Duration(n+1) * client.retryDelay
		}),
		retry.OnRetry(func(n uint, err error) {
			client.logger.Warn("retrying chat completion", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return inference.TextResponse{}, fmt.Errorf("%w: %w", apperr.ErrExternalService, err)
	}
	return result, nil
}

func (client *Client) post(ctx context.Context, body ChatCompletionRequest) (inference.TextResponse, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return inference.TextResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.TextResponse{}, &responseError{StatusCode: response.StatusCode(), Body: response.String()}
	}

	completion, ok := response.Result().(*ChatCompletionResponse)
	if !ok || completion == nil || len(completion.Choices) == 0 {
		return inference.TextResponse{}, errors.New("no choices in chat completion response")
	}
	client.logger.Debug("chat completion",
		zap.String("model", completion.Model),
		zap.Int("total_tokens", completion.Usage.TotalTokens),
		zap.String("finish_reason", completion.Choices[0].FinishReason),
	)

	return inference.TextResponse{
		Text: completion.Choices[0].Message.Content,
		Usage: inference.Usage{
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
			TotalTokens:      completion.Usage.TotalTokens,
		},
	}, nil
}

func userMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// GenerateText implements the inference.Client interface
func (client *Client) GenerateText(ctx context.Context, params inference.TextRequest) (inference.TextResponse, error) {
	if strings.TrimSpace(params.Prompt) == "" {
		return inference.TextResponse{}, apperr.Validation("prompt is required")
	}
	return client.complete(ctx, userMessage(params.Prompt), params.Options)
}

// Chat implements the inference.Client interface
func (client *Client) Chat(ctx context.Context, params inference.ChatRequest) (inference.TextResponse, error) {
	if len(params.Messages) == 0 {
		return inference.TextResponse{}, apperr.Validation("messages array is required")
	}
	messages := make([]Message, 0, len(params.Messages))
	for _, m := range params.Messages {
		role := RoleUser
		if m.Role == inference.RoleAssistant {
			role = RoleAssistant
		}
		messages = append(messages, Message{Role: role, Content: m.Content})
	}
	return client.complete(ctx, messages, params.Options)
}

// GenerateStudyContent implements the inference.Client interface
func (client *Client) GenerateStudyContent(ctx context.Context, params inference.StudyContentRequest) (inference.TextResponse, error) {
	prompt := inference.StudyContentPrompt(params.Subject, params.Topic, params.ContentType)
	return client.complete(ctx, userMessage(prompt), params.Options)
}

// AskDoubt implements the inference.Client interface
func (client *Client) AskDoubt(ctx context.Context, params inference.DoubtRequest) (inference.TextResponse, error) {
	if strings.TrimSpace(params.Question) == "" {
		return inference.TextResponse{}, apperr.Validation("question is required")
	}
	return client.complete(ctx, userMessage(inference.DoubtPrompt(params)), inference.Options{})
}

// GenerateStudyPlan implements the inference.Client interface
func (client *Client) GenerateStudyPlan(ctx context.Context, params inference.StudyPlanRequest) (inference.StudyPlanResponse, error) {
	metadata := inference.NewPlanMetadata(params, client.now())
	response, err := client.complete(ctx, userMessage(inference.StudyPlanPrompt(params, metadata)), inference.Options{
		MaxTokens: 4096,
	})
	if err != nil {
		return inference.StudyPlanResponse{}, err
	}

	plan := inference.ParseObject[inference.StudyPlan](response.Text)
	if !plan.OK() {
		client.logger.Warn("study plan was not valid JSON, keeping raw text", zap.String("exam", params.ExamName))
	}
	return inference.StudyPlanResponse{Plan: plan, Metadata: metadata}, nil
}

// GenerateSmartLearning implements the inference.Client interface
func (client *Client) GenerateSmartLearning(ctx context.Context, params inference.SmartLearningRequest) (inference.Parsed[inference.SmartLearningContent], error) {
	if len(inference.ValidSmartLearningTags(params.Tags)) == 0 {
		return inference.Parsed[inference.SmartLearningContent]{}, apperr.Validation("at least one valid tag is required")
	}
	response, err := client.complete(ctx, userMessage(inference.SmartLearningPrompt(params)), inference.Options{
		MaxTokens: 4096,
	})
	if err != nil {
		return inference.Parsed[inference.SmartLearningContent]{}, err
	}
	return inference.ParseObject[inference.SmartLearningContent](response.Text), nil
}

// GenerateSmartSuggestions implements the inference.Client interface
func (client *Client) GenerateSmartSuggestions(ctx context.Context, params inference.SuggestionRequest) ([]string, error) {
	response, err := client.complete(ctx, userMessage(inference.SmartSuggestionsPrompt(params)), inference.Options{
		Temperature: inference.Float32(0.8),
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, err
	}
	if parsed := inference.ParseArray[[]string](response.Text); parsed.OK() {
		return inference.Limit(*parsed.Structured, inference.MaxSmartSuggestions), nil
	}
	return inference.ExtractQuestions(response.Text, inference.MaxSmartSuggestions), nil
}

// GeneratePopularTopics implements the inference.Client interface
func (client *Client) GeneratePopularTopics(ctx context.Context, params inference.SuggestionRequest) ([]string, error) {
	response, err := client.complete(ctx, userMessage(inference.PopularTopicsPrompt(params)), inference.Options{
		Temperature: inference.Float32(0.7),
		MaxTokens:   512,
	})
	if err != nil {
		return nil, err
	}
	if parsed := inference.ParseArray[[]string](response.Text); parsed.OK() {
		return inference.Limit(*parsed.Structured, inference.MaxPopularTopics), nil
	}
	return inference.ExtractTopics(response.Text, inference.MaxPopularTopics), nil
}
