package server

import (
	"github.com/gin-gonic/gin"

	"github.com/studysaathi/studysaathi/internal/notes"
)

type saveNoteReq struct {
	UserID  string   `json:"userId" binding:"required"`
	Subject string   `json:"subject"`
	Topic   string   `json:"topic" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// POST /api/ai/notes
func (s *Server) saveNote(c *gin.Context) {
	var req saveNoteReq
	if !s.bindJSON(c, &req, "userId, topic, and content are required") {
		return
	}
	note, err := s.notes.Save(c.Request.Context(), notes.SaveRequest{
		UserID:  req.UserID,
		Subject: req.Subject,
		Topic:   req.Topic,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, gin.H{"success": true, "noteId": note.ID})
}

// GET /api/ai/notes/:userId
func (s *Server) listNotes(c *gin.Context) {
	list, err := s.notes.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	if list == nil {
		list = []notes.Note{}
	}
	respondOK(c, gin.H{"success": true, "notes": list})
}
