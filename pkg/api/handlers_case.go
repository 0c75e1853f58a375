package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verdictlabs/verdict/pkg/services"
)

func (s *Server) handleCreateCase(c *gin.Context) {
	var req services.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "invalid request body")
		return
	}

	lc, err := s.cases.Create(c.Request.Context(), firmID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lc)
}

func (s *Server) handleListCases(c *gin.Context) {
	cases, err := s.cases.List(c.Request.Context(), firmID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cases": cases})
}

func (s *Server) handleGetCase(c *gin.Context) {
	lc, err := s.cases.Get(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lc)
}

type addWitnessRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Server) handleAddWitness(c *gin.Context) {
	var req addWitnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "name required")
		return
	}

	w, err := s.cases.AddWitness(c.Request.Context(), firmID(c), c.Param("id"), req.Name, req.Email, req.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (s *Server) handleGetWitness(c *gin.Context) {
	w, err := s.cases.GetWitness(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}
