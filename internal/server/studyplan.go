package server

import (
	"github.com/gin-gonic/gin"

	"github.com/studysaathi/studysaathi/internal/studyplan"
)

type planResponse struct {
	succeeded
	*studyplan.Plan
	Adjustments *studyplan.Adjustment `json:"adjustments,omitempty"`
}

type generatePlanReq struct {
	UserID          string              `json:"userId" binding:"required"`
	ExamName        string              `json:"examName" binding:"required"`
	ExamDate        string              `json:"examDate" binding:"required"`
	Subjects        []string            `json:"subjects" binding:"required,min=1"`
	Topics          map[string][]string `json:"topics"`
	WeakSubjects    map[string]int      `json:"weakSubjects" binding:"omitempty,dive,min=1,max=5"`
	DailyStudyHours float64             `json:"dailyStudyHours" binding:"gte=0,lte=24"`
}

// POST /api/ai/study-plan
func (s *Server) generateStudyPlan(c *gin.Context) {
	var req generatePlanReq
	if !s.bindJSON(c, &req, "userId, examName, examDate, and subjects are required") {
		return
	}
	plan, err := s.plans.Generate(c.Request.Context(), studyplan.GenerateRequest{
		UserID:          req.UserID,
		ExamName:        req.ExamName,
		ExamDate:        req.ExamDate,
		Subjects:        req.Subjects,
		Topics:          req.Topics,
		WeakSubjects:    req.WeakSubjects,
		DailyStudyHours: req.DailyStudyHours,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, planResponse{succeeded: ok, Plan: plan})
}

// GET /api/ai/study-plan/:userId
func (s *Server) activeStudyPlan(c *gin.Context) {
	plan, message, err := s.plans.Active(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	if plan == nil {
		respondOK(c, gin.H{"success": true, "plan": nil, "message": message})
		return
	}
	respondOK(c, planResponse{succeeded: ok, Plan: plan})
}

type adjustPlanReq struct {
	UserID string `json:"userId" binding:"required"`
}

// POST /api/ai/study-plan/adjust
func (s *Server) adjustStudyPlan(c *gin.Context) {
	var req adjustPlanReq
	if !s.bindJSON(c, &req, "userId is required") {
		return
	}
	plan, adjustment, err := s.plans.Adjust(c.Request.Context(), req.UserID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, planResponse{succeeded: ok, Plan: plan, Adjustments: adjustment})
}
