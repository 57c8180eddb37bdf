package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/studysaathi/studysaathi/internal/progress"
	"github.com/studysaathi/studysaathi/internal/streak"
)

type trackTimeReq struct {
	UserID  string `json:"userId" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Topic   string `json:"topic" binding:"required"`
	Minutes int    `json:"minutes" binding:"required"`
}

// POST /api/ai/track/time
func (s *Server) trackTime(c *gin.Context) {
	var req trackTimeReq
	if !s.bindJSON(c, &req, "userId, subject, topic, and minutes are required") {
		return
	}
	ctx := c.Request.Context()
	result, err := s.progress.TrackTimeSpent(ctx, req.UserID, req.Subject, req.Topic, req.Minutes)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if _, err := s.streaks.Update(ctx, req.UserID); err != nil {
		s.logger.Warn("failed to update streak after tracking time",
			zap.String("user_id", req.UserID),
			zap.Error(err))
	}

	respondOK(c, struct {
		succeeded
		*progress.TimeResult
	}{ok, result})
}

type trackConfidenceReq struct {
	UserID     string `json:"userId" binding:"required"`
	Subject    string `json:"subject" binding:"required"`
	Topic      string `json:"topic" binding:"required"`
	Confidence *int   `json:"confidence" binding:"required"`
}

// POST /api/ai/track/confidence
func (s *Server) trackConfidence(c *gin.Context) {
	var req trackConfidenceReq
	if !s.bindJSON(c, &req, "userId, subject, topic, and confidence are required") {
		return
	}
	result, err := s.progress.UpdateConfidence(c.Request.Context(), req.UserID, req.Subject, req.Topic, *req.Confidence)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, struct {
		succeeded
		*progress.ConfidenceResult
	}{ok, result})
}

// GET /api/ai/track/progress/:userId?subject=
func (s *Server) topicProgress(c *gin.Context) {
	overview, err := s.progress.TopicProgress(c.Request.Context(), c.Param("userId"), c.Query("subject"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, struct {
		succeeded
		*progress.Overview
	}{ok, overview})
}

// GET /api/ai/track/recommendations/:userId
func (s *Server) recommendations(c *gin.Context) {
	recommendations, err := s.progress.Recommendations(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, struct {
		succeeded
		*progress.Recommendations
	}{ok, recommendations})
}

// GET /api/ai/streak/:userId
func (s *Server) getStreak(c *gin.Context) {
	status, err := s.streaks.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, struct {
		succeeded
		*streak.Status
	}{ok, status})
}

type updateStreakReq struct {
	UserID string `json:"userId" binding:"required"`
}

// POST /api/ai/streak/update
func (s *Server) updateStreak(c *gin.Context) {
	var req updateStreakReq
	if !s.bindJSON(c, &req, "userId is required") {
		return
	}
	status, err := s.streaks.Update(c.Request.Context(), req.UserID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, struct {
		succeeded
		*streak.Status
	}{ok, status})
}
