package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qaforge/qaforge/pkg/models"
)

// generateTestCasesHandler accepts a UI generation request and queues it.
// POST /api/v1/generate/test-cases
func (s *Server) generateTestCasesHandler(c *gin.Context) {
	var body GenerateTestCasesRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidInput, "invalid request body: "+err.Error())
		return
	}

	req, err := s.requests.CreateRequest(c.Request.Context(), models.CreateRequestInput{
		RequestID:    uuid.New().String(),
		RequestType:  models.RequestTypeUI,
		URL:          body.URL,
		Requirements: body.Requirements,
		TestTypes:    body.TestTypes,
		Options:      body.Options,
	})
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, newAcceptedResponse(req))
}

// generateAPITestsHandler accepts an API generation request and queues it.
// POST /api/v1/generate/api-tests
func (s *Server) generateAPITestsHandler(c *gin.Context) {
	var body GenerateAPITestsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidInput, "invalid request body: "+err.Error())
		return
	}
	if (body.OpenAPIURL == "") == (body.OpenAPIContent == "") {
		respondError(c, http.StatusBadRequest, codeInvalidInput,
			"exactly one of openapi_url and openapi_content is required")
		return
	}

	req, err := s.requests.CreateRequest(c.Request.Context(), models.CreateRequestInput{
		RequestID:      uuid.New().String(),
		RequestType:    models.RequestTypeAPI,
		Requirements:   body.Requirements,
		OpenAPIURL:     body.OpenAPIURL,
		OpenAPIContent: body.OpenAPIContent,
		Options:        body.Options,
	})
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, newAcceptedResponse(req))
}
