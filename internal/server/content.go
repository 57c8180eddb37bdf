package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/studysaathi/studysaathi/internal/apperr"
	"github.com/studysaathi/studysaathi/internal/cache"
	"github.com/studysaathi/studysaathi/internal/inference"
)

const (
	suggestionRecentTopics = 5
	popularRecentTopics    = 10
)

type optionsReq struct {
	Temperature *float32 `json:"temperature" binding:"omitempty,gte=0,lte=2"`
	MaxTokens   int      `json:"maxTokens" binding:"omitempty,gt=0,lte=8192"`
}

func (o *optionsReq) toOptions() inference.Options {
	if o == nil {
		return inference.Options{}
	}
	return inference.Options{Temperature: o.Temperature, MaxTokens: o.MaxTokens}
}

type textResponse struct {
	succeeded
	inference.TextResponse
}

type promptReq struct {
	Prompt  string      `json:"prompt" binding:"required"`
	Options *optionsReq `json:"options"`
}

// POST /api/ai/prompt
func (s *Server) prompt(c *gin.Context) {
	var req promptReq
	if !s.bindJSON(c, &req, "Prompt is required") {
		return
	}
	response, err := s.client.GenerateText(c.Request.Context(), inference.TextRequest{
		Prompt:  req.Prompt,
		Options: req.Options.toOptions(),
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, textResponse{ok, response})
}

type chatReq struct {
	Messages []inference.ChatMessage `json:"messages" binding:"required,min=1"`
	Options  *optionsReq             `json:"options"`
}

// POST /api/ai/chat
func (s *Server) chat(c *gin.Context) {
	var req chatReq
	if !s.bindJSON(c, &req, "Messages array is required") {
		return
	}
	response, err := s.client.Chat(c.Request.Context(), inference.ChatRequest{
		Messages: req.Messages,
		Options:  req.Options.toOptions(),
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, textResponse{ok, response})
}

type studyContentReq struct {
	Subject     string      `json:"subject" binding:"required"`
	Topic       string      `json:"topic" binding:"required"`
	ContentType string      `json:"contentType"`
	Options     *optionsReq `json:"options"`
}

// POST /api/ai/study-content
func (s *Server) studyContent(c *gin.Context) {
	var req studyContentReq
	if !s.bindJSON(c, &req, "Subject and topic are required") {
		return
	}
	params := inference.StudyContentRequest{
		Subject:     req.Subject,
		Topic:       req.Topic,
		ContentType: inference.ParseContentType(req.ContentType),
		Options:     req.Options.toOptions(),
	}

	key := cache.Key("study-content", params.Subject, params.Topic, string(params.ContentType), optionsKey(params.Options))
	text, cached, err := s.cache.GetOrGenerate(c.Request.Context(), key, func(ctx context.Context) (string, error) {
		response, err := s.client.GenerateStudyContent(ctx, params)
		if err != nil {
			return "", err
		}
		return response.Text, nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"success":     true,
		"text":        text,
		"contentType": params.ContentType,
		"cached":      cached,
	})
}

func optionsKey(options inference.Options) string {
	temperature := "default"
	if options.Temperature != nil {
		temperature = fmt.Sprintf("%.2f", *options.Temperature)
	}
	return fmt.Sprintf("%s/%d", temperature, options.MaxTokens)
}

type doubtReq struct {
	Question string `json:"question" binding:"required"`
	Context  struct {
		Subject  string `json:"subject"`
		Topic    string `json:"topic"`
		ExamType string `json:"examType"`
	} `json:"context"`
}

// POST /api/ai/ask-doubt
func (s *Server) askDoubt(c *gin.Context) {
	var req doubtReq
	if !s.bindJSON(c, &req, "Question is required") {
		return
	}
	response, err := s.client.AskDoubt(c.Request.Context(), inference.DoubtRequest{
		Question: req.Question,
		Subject:  req.Context.Subject,
		Topic:    req.Context.Topic,
		ExamType: req.Context.ExamType,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, textResponse{ok, response})
}

type suggestionReq struct {
	UserID       string              `json:"userId"`
	ExamName     string              `json:"examName"`
	Subjects     []string            `json:"subjects"`
	Topics       map[string][]string `json:"topics"`
	WeakSubjects map[string]int      `json:"weakSubjects"`
}

// suggestionRequest adds the recently studied topics of the user, when known. A failed lookup
// only costs the personalisation.
func (s *Server) suggestionRequest(ctx context.Context, req suggestionReq, recentLimit int) inference.SuggestionRequest {
	params := inference.SuggestionRequest{
		ExamName:     req.ExamName,
		Subjects:     req.Subjects,
		Topics:       req.Topics,
		WeakSubjects: req.WeakSubjects,
	}
	if strings.TrimSpace(req.UserID) == "" {
		return params
	}
	recent, err := s.progress.RecentTopics(ctx, req.UserID, recentLimit)
	if err != nil {
		s.logger.Warn("failed to read recent topics", zap.String("user_id", req.UserID), zap.Error(err))
		return params
	}
	for _, topic := range recent {
		params.RecentTopics = append(params.RecentTopics, inference.RecentTopic{Topic: topic.Topic, Subject: topic.Subject})
	}
	return params
}

// POST /api/ai/smart-suggestions
func (s *Server) smartSuggestions(c *gin.Context) {
	var req suggestionReq
	if !s.bindJSON(c, &req, "Invalid request body") {
		return
	}
	ctx := c.Request.Context()
	suggestions, err := s.client.GenerateSmartSuggestions(ctx, s.suggestionRequest(ctx, req, suggestionRecentTopics))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"success": true, "suggestions": nonNil(suggestions)})
}

// POST /api/ai/popular-topics
func (s *Server) popularTopics(c *gin.Context) {
	var req suggestionReq
	if !s.bindJSON(c, &req, "Invalid request body") {
		return
	}
	ctx := c.Request.Context()
	topics, err := s.client.GeneratePopularTopics(ctx, s.suggestionRequest(ctx, req, popularRecentTopics))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"success": true, "topics": nonNil(topics)})
}

type smartLearningReq struct {
	Topic    string   `json:"topic" binding:"required"`
	Subject  string   `json:"subject"`
	ExamType string   `json:"examType"`
	Tags     []string `json:"tags" binding:"required,min=1"`
}

// POST /api/ai/smart-learning
func (s *Server) smartLearning(c *gin.Context) {
	var req smartLearningReq
	if !s.bindJSON(c, &req, "Topic and at least one tag are required") {
		return
	}
	tags := inference.ValidSmartLearningTags(req.Tags)
	if len(tags) == 0 {
		s.respondError(c, apperr.Validation("No valid tags provided"))
		return
	}

	content, err := s.client.GenerateSmartLearning(c.Request.Context(), inference.SmartLearningRequest{
		Topic:    req.Topic,
		Subject:  req.Subject,
		ExamType: req.ExamType,
		Tags:     tags,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"success":    true,
		"content":    content.Structured,
		"rawContent": content.Raw,
	})
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
