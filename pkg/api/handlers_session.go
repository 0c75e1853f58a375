package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/pkg/models"
)

func (s *Server) handleCreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "invalid request body")
		return
	}

	sess, err := s.sessions.Create(c.Request.Context(), firmID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

func (s *Server) handleListSessions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	filters := models.SessionFilters{
		CaseID:    c.Query("case_id"),
		WitnessID: c.Query("witness_id"),
		Status:    c.Query("status"),
		Limit:     limit,
		Offset:    offset,
	}

	resp, err := s.sessions.List(c.Request.Context(), firmID(c), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleGetSession(c *gin.Context) {
	sess, err := s.sessions.Get(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (s *Server) handleStartSession(c *gin.Context) {
	s.transition(c, s.sessions.Start)
}

func (s *Server) handlePauseSession(c *gin.Context) {
	s.transition(c, s.sessions.Pause)
}

func (s *Server) handleResumeSession(c *gin.Context) {
	s.transition(c, s.sessions.Resume)
}

func (s *Server) handleEndSession(c *gin.Context) {
	s.transition(c, s.sessions.End)
}

// transition runs one lifecycle transition and returns the updated session.
func (s *Server) transition(c *gin.Context, fn func(ctx context.Context, firmID, sessionID string) (*ent.Session, error)) {
	sess, err := fn(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (s *Server) handleLiveState(c *gin.Context) {
	state, err := s.sessions.LiveState(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (s *Server) handleListEvents(c *gin.Context) {
	events, err := s.events.List(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.EventListResponse{Events: events})
}

func (s *Server) handleListAlerts(c *gin.Context) {
	alerts, err := s.alerts.List(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

func (s *Server) handleConfirmAlert(c *gin.Context) {
	a, err := s.alerts.Confirm(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) handleRejectAlert(c *gin.Context) {
	a, err := s.alerts.Reject(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
