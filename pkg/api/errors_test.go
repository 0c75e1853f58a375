package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/pkg/llm"
	"github.com/verdictlabs/verdict/pkg/services"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", services.NewValidationError("case_name", "required"), http.StatusUnprocessableEntity, CodeValidationError},
		{"not found", services.ErrNotFound, http.StatusNotFound, CodeNotFound},
		{"wrapped not found", fmt.Errorf("get case: %w", services.ErrNotFound), http.StatusNotFound, CodeNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict, CodeConflict},
		{"invalid transition", services.ErrInvalidTransition, http.StatusConflict, CodeConflict},
		{"share expired", services.ErrShareExpired, http.StatusGone, CodeShareLinkExpired},
		{"upstream down", fmt.Errorf("stream: %w", llm.ErrUnavailable), http.StatusBadGateway, CodeUpstreamUnavailable},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, CodeServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			respondServiceError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			var envelope struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.Equal(t, tc.code, envelope.Error.Code)
			assert.NotEmpty(t, envelope.Error.Message)
			if tc.code == CodeServerError {
				assert.NotContains(t, envelope.Error.Message, "disk on fire", "internal details stay out of responses")
			}
		})
	}
}
