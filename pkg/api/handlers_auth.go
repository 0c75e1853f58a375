package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// handleLogin exchanges credentials for a JWT. Unknown email and wrong
// password are indistinguishable on the wire.
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "email and password required")
		return
	}

	u, err := s.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil || !s.users.CheckPassword(u, req.Password) {
		respondError(c, http.StatusUnauthorized, CodeTokenInvalid, "invalid credentials")
		return
	}
	if !u.IsActive {
		respondError(c, http.StatusForbidden, CodeAccountInactive, "account is inactive")
		return
	}

	now := time.Now()
	token, err := s.issueToken(u, now)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": now.Add(s.cfg.Auth.TokenTTL).UTC(),
		"user": gin.H{
			"id":        u.ID,
			"firm_id":   u.FirmID,
			"email":     u.Email,
			"full_name": u.FullName,
			"role":      u.Role,
		},
	})
}
