package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/verdictlabs/verdict/pkg/session"
)

type askQuestionRequest struct {
	Topic                   string `json:"topic"`
	QuestionNumber          int    `json:"question_number"`
	PriorAnswer             string `json:"prior_answer"`
	HesitationDetected      bool   `json:"hesitation_detected"`
	RecentInconsistencyFlag bool   `json:"recent_inconsistency_flag"`
}

// handleAskQuestion streams the next interrogator question as Server-Sent
// Events over POST. A provider failure before the first frame maps to a
// normal error response; after the first frame the stream carries its own
// ERROR event.
func (s *Server) handleAskQuestion(c *gin.Context) {
	var req askQuestionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "invalid request body")
			return
		}
	}

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")

	framesSent := false
	emit := func(event string, data map[string]any) error {
		if err := c.Request.Context().Err(); err != nil {
			return err
		}
		payload, err := json.Marshal(data)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, payload); err != nil {
			return err
		}
		framesSent = true
		c.Writer.Flush()
		return nil
	}

	err := s.orch.AskQuestion(c.Request.Context(), firmID(c), c.Param("id"), session.AskInput{
		Topic:               req.Topic,
		PriorAnswer:         req.PriorAnswer,
		HesitationDetected:  req.HesitationDetected,
		RecentInconsistency: req.RecentInconsistencyFlag,
	}, emit)
	if err != nil && !framesSent {
		// Headers are not committed until the first flush, so a pre-stream
		// failure can still return the JSON error envelope.
		h.Del("Content-Type")
		respondServiceError(c, err)
	}
}

// handleAudioAnswer ingests a recorded witness answer: multipart upload,
// transcription, then the per-answer agent passes.
func (s *Server) handleAudioAnswer(c *gin.Context) {
	maxBytes := int64(s.cfg.Blob.MaxAudioMB) << 20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "file required")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, CodeValidationError,
			fmt.Sprintf("audio exceeds %d MB limit", s.cfg.Blob.MaxAudioMB))
		return
	}

	questionNumber, _ := strconv.Atoi(c.Request.FormValue("questionNumber"))
	durationMs, _ := strconv.ParseInt(c.Request.FormValue("durationMs"), 10, 64)

	outcome, err := s.orch.IngestAnswer(c.Request.Context(), firmID(c), c.Param("id"), audio, header.Filename, session.AnswerMeta{
		QuestionNumber: questionNumber,
		DurationMs:     durationMs,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

type textAnswerRequest struct {
	Text string `json:"text" binding:"required"`
}

// handleTextAnswer ingests a typed witness answer, for voice-disabled
// rehearsals.
func (s *Server) handleTextAnswer(c *gin.Context) {
	var req textAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "text required")
		return
	}

	outcome, err := s.orch.IngestTextAnswer(c.Request.Context(), firmID(c), c.Param("id"), req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

type objectionRequest struct {
	QuestionText string `json:"question_text" binding:"required"`
}

// handleRunObjection analyzes one question on demand, outside the normal
// per-answer pass.
func (s *Server) handleRunObjection(c *gin.Context) {
	var req objectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "question_text required")
		return
	}

	sess, err := s.orch.Load(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result, err := s.orch.RunObjection(c.Request.Context(), sess, req.QuestionText)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type inconsistencyRequest struct {
	QuestionText string `json:"question_text"`
	AnswerText   string `json:"answer_text" binding:"required"`
}

// handleRunInconsistency checks one answer against the witness's prior
// statements on demand.
func (s *Server) handleRunInconsistency(c *gin.Context) {
	var req inconsistencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "answer_text required")
		return
	}

	sess, err := s.orch.Load(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result, err := s.orch.RunSentinel(c.Request.Context(), sess, req.QuestionText, req.AnswerText)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
