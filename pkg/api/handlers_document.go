package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verdictlabs/verdict/pkg/ingest"
)

// handleUploadDocument accepts a multipart case document and runs it through
// the ingestion pipeline. The response carries the final ingestion status;
// a failed indexing run still returns the stored document row.
func (s *Server) handleUploadDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "file required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "failed to read upload")
		return
	}

	doc, err := s.docs.Upload(c.Request.Context(), firmID(c), ingest.UploadRequest{
		CaseID:      c.Param("id"),
		FileName:    header.Filename,
		MimeType:    header.Header.Get("Content-Type"),
		DocType:     c.PostForm("doc_type"),
		WitnessName: c.PostForm("witness_name"),
		Data:        data,
	})
	if err != nil {
		if doc != nil {
			// Stored but not indexed: report the row with its FAILED status.
			c.JSON(http.StatusCreated, doc)
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (s *Server) handleListDocuments(c *gin.Context) {
	docs, err := s.docs.List(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (s *Server) handleGetDocument(c *gin.Context) {
	doc, err := s.docs.Get(c.Request.Context(), firmID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
