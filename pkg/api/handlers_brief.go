package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verdictlabs/verdict/ent"
)

// briefResponse wraps a brief with presigned URLs for its stored artifacts.
func (s *Server) briefResponse(c *gin.Context, b *ent.Brief) gin.H {
	resp := gin.H{"brief": b}
	if s.blobs.Enabled() {
		if b.PdfKey != "" {
			if url, err := s.blobs.PresignGet(c.Request.Context(), b.PdfKey); err == nil {
				resp["pdf_url"] = url
			} else {
				s.logger.Warn("failed to presign brief pdf", "brief_id", b.ID, "error", err)
			}
		}
		if b.CoachAudioKey != "" {
			if url, err := s.blobs.PresignGet(c.Request.Context(), b.CoachAudioKey); err == nil {
				resp["coach_audio_url"] = url
			} else {
				s.logger.Warn("failed to presign coach audio", "brief_id", b.ID, "error", err)
			}
		}
	}
	return resp
}

func (s *Server) handleGetBrief(c *gin.Context) {
	b, err := s.briefs.GetBySession(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.briefResponse(c, b))
}

// handleRequestBrief re-enqueues brief generation for a completed session
// whose previous attempt failed or never ran.
func (s *Server) handleRequestBrief(c *gin.Context) {
	if err := s.sessions.RequestBrief(c.Request.Context(), firmID(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"brief_status": "PENDING"})
}

func (s *Server) handleShareBrief(c *gin.Context) {
	b, err := s.briefs.Share(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"share_token":      b.ShareToken,
		"share_expires_at": b.ShareExpiresAt,
	})
}

// handleSharedBrief resolves an unauthenticated share link.
func (s *Server) handleSharedBrief(c *gin.Context) {
	b, err := s.briefs.GetByShareToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.briefResponse(c, b))
}
