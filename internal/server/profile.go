package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studysaathi/studysaathi/internal/apperr"
	"github.com/studysaathi/studysaathi/internal/database"
	"github.com/studysaathi/studysaathi/internal/studyplan"
	"github.com/studysaathi/studysaathi/internal/user"
)

type profileReq struct {
	UserID          string              `json:"userId" binding:"required"`
	DisplayName     string              `json:"displayName"`
	ExamName        string              `json:"examName"`
	ExamDate        string              `json:"examDate"`
	Subjects        []string            `json:"subjects"`
	Topics          map[string][]string `json:"topics"`
	WeakSubjects    map[string]int      `json:"weakSubjects" binding:"omitempty,dive,min=1,max=5"`
	DailyStudyHours float64             `json:"dailyStudyHours" binding:"gte=0,lte=24"`
}

func (r profileReq) toProfile() (*user.Profile, error) {
	profile := &user.Profile{
		UserID:          strings.TrimSpace(r.UserID),
		DisplayName:     strings.TrimSpace(r.DisplayName),
		ExamName:        strings.TrimSpace(r.ExamName),
		Subjects:        database.NewJSON(r.Subjects),
		Topics:          database.NewJSON(r.Topics),
		WeakSubjects:    database.NewJSON(r.WeakSubjects),
		DailyStudyHours: r.DailyStudyHours,
	}
	if profile.Subjects.V == nil {
		profile.Subjects.V = []string{}
	}
	if profile.Topics.V == nil {
		profile.Topics.V = map[string][]string{}
	}
	if profile.WeakSubjects.V == nil {
		profile.WeakSubjects.V = map[string]int{}
	}
	if strings.TrimSpace(r.ExamDate) != "" {
		examDate, err := studyplan.ParseExamDate(r.ExamDate)
		if err != nil {
			return nil, err
		}
		examDate = time.Date(examDate.Year(), examDate.Month(), examDate.Day(), 0, 0, 0, 0, time.UTC)
		profile.ExamDate = &examDate
	}
	return profile, nil
}

// PUT /api/ai/profile
func (s *Server) saveProfile(c *gin.Context) {
	var req profileReq
	if !s.bindJSON(c, &req, "userId is required") {
		return
	}
	profile, err := req.toProfile()
	if err != nil {
		s.respondError(c, err)
		return
	}
	if profile.UserID == "" {
		s.respondError(c, apperr.Validation("userId is required"))
		return
	}

	ctx := c.Request.Context()
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		s.respondError(c, err)
		return
	}
	saved, err := s.profiles.Get(ctx, profile.UserID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"success": true, "profile": saved})
}

// GET /api/ai/profile/:userId
func (s *Server) getProfile(c *gin.Context) {
	profile, err := s.profiles.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	if profile == nil {
		respondOK(c, gin.H{"success": true, "profile": nil, "message": "Profile not found"})
		return
	}
	respondOK(c, gin.H{"success": true, "profile": profile})
}
