package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/verdictlabs/verdict/ent"
)

// Context keys set by the auth middleware.
const (
	ctxKeyUser   = "auth_user"
	ctxKeyFirmID = "auth_firm_id"
)

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// requireAuth validates the Bearer JWT and loads the account. Inactive
// accounts are rejected with 403 so a revoked member cannot keep a valid
// token alive.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondError(c, http.StatusUnauthorized, CodeTokenMissing, "authorization header required")
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			respondError(c, http.StatusUnauthorized, CodeTokenInvalid, "malformed authorization header")
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(s.cfg.Auth.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			respondError(c, http.StatusUnauthorized, CodeTokenInvalid, "invalid or expired token")
			return
		}

		sub, err := claims.GetSubject()
		if err != nil || sub == "" {
			respondError(c, http.StatusUnauthorized, CodeTokenInvalid, "token missing subject")
			return
		}

		u, err := s.users.GetByID(c.Request.Context(), sub)
		if err != nil {
			respondError(c, http.StatusUnauthorized, CodeTokenInvalid, "unknown account")
			return
		}
		if !u.IsActive {
			respondError(c, http.StatusForbidden, CodeAccountInactive, "account is inactive")
			return
		}

		c.Set(ctxKeyUser, u)
		c.Set(ctxKeyFirmID, u.FirmID)
		c.Next()
	}
}

// requireAuthOrWitnessToken guards the live question/answer endpoints. The
// attorney console sends a Bearer JWT; the witness device sends the session
// join token in X-Witness-Token. A witness token is only valid for its own
// session, and leaves the firm scope empty so downstream lookups skip the
// firm check (the token itself is the capability).
func (s *Server) requireAuthOrWitnessToken() gin.HandlerFunc {
	auth := s.requireAuth()
	return func(c *gin.Context) {
		token := c.GetHeader("X-Witness-Token")
		if token == "" {
			auth(c)
			return
		}

		sess, err := s.sessions.GetByWitnessToken(c.Request.Context(), token)
		if err != nil || sess.ID != c.Param("id") {
			respondError(c, http.StatusUnauthorized, CodeTokenInvalid, "invalid witness token")
			return
		}
		c.Next()
	}
}

// currentUser returns the authenticated user set by requireAuth.
func currentUser(c *gin.Context) *ent.User {
	if v, ok := c.Get(ctxKeyUser); ok {
		if u, ok := v.(*ent.User); ok {
			return u
		}
	}
	return nil
}

// firmID returns the authenticated firm scope.
func firmID(c *gin.Context) string {
	return c.GetString(ctxKeyFirmID)
}

// issueToken mints an HS256 JWT for a user.
func (s *Server) issueToken(u *ent.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":     u.ID,
		"firm_id": u.FirmID,
		"role":    string(u.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(s.cfg.Auth.TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Auth.JWTSecret))
}
