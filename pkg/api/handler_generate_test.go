package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/ent/request"
)

func TestGenerateTestCases(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	t.Run("accepts a valid request", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/generate/test-cases", GenerateTestCasesRequest{
			URL:          "https://shop.example.com/login",
			Requirements: []string{"User can log in with valid credentials"},
			TestTypes:    []string{"positive", "negative"},
		})

		require.Equal(t, http.StatusAccepted, w.Code, "body: %s", w.Body.String())
		resp := decodeJSON[AcceptedResponse](t, w)
		assert.NotEmpty(t, resp.RequestID)
		assert.Equal(t, resp.RequestID, resp.TaskID)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "/api/v1/tasks/"+resp.RequestID+"/stream", resp.StreamURL)
		assert.False(t, resp.CreatedAt.IsZero())

		row, err := client.Request.Get(ctx, resp.RequestID)
		require.NoError(t, err)
		assert.Equal(t, request.RequestTypeUI, row.RequestType)
		assert.Equal(t, request.StatusPending, row.Status)
		assert.Equal(t, []string{"positive", "negative"}, row.TestTypes)
	})

	t.Run("rejects a body without url", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/generate/test-cases", map[string]any{
			"requirements": []string{"User can log in"},
		})
		assertErrorCode(t, w, http.StatusBadRequest, codeInvalidInput)
	})

	t.Run("rejects a body without requirements", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/generate/test-cases", map[string]any{
			"url": "https://shop.example.com/login",
		})
		assertErrorCode(t, w, http.StatusBadRequest, codeInvalidInput)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/generate/test-cases", "not an object")
		assertErrorCode(t, w, http.StatusBadRequest, codeInvalidInput)
	})
}

func TestGenerateAPITests(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	t.Run("accepts an inline OpenAPI document", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/generate/api-tests", GenerateAPITestsRequest{
			OpenAPIContent: "openapi: 3.0.0\ninfo:\n  title: Products\n  version: 1.0.0\npaths: {}\n",
			Requirements:   []string{"Listing products returns 200"},
		})

		require.Equal(t, http.StatusAccepted, w.Code, "body: %s", w.Body.String())
		resp := decodeJSON[AcceptedResponse](t, w)

		row, err := client.Request.Get(ctx, resp.RequestID)
		require.NoError(t, err)
		assert.Equal(t, request.RequestTypeAPI, row.RequestType)
		require.NotNil(t, row.OpenapiContent)
	})

	t.Run("accepts a spec URL", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/generate/api-tests", GenerateAPITestsRequest{
			OpenAPIURL:   "https://api.example.com/openapi.json",
			Requirements: []string{"Listing products returns 200"},
		})
		require.Equal(t, http.StatusAccepted, w.Code, "body: %s", w.Body.String())
	})

	t.Run("rejects both url and content", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/generate/api-tests", GenerateAPITestsRequest{
			OpenAPIURL:     "https://api.example.com/openapi.json",
			OpenAPIContent: "openapi: 3.0.0\n",
			Requirements:   []string{"Listing products returns 200"},
		})
		assertErrorCode(t, w, http.StatusBadRequest, codeInvalidInput)
	})

	t.Run("rejects neither url nor content", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/generate/api-tests", GenerateAPITestsRequest{
			Requirements: []string{"Listing products returns 200"},
		})
		assertErrorCode(t, w, http.StatusBadRequest, codeInvalidInput)
	})
}

// createUIRequest persists a pending UI request directly through the service.
func createUIRequest(ctx context.Context, t *testing.T, srv *Server) string {
	t.Helper()
	w := doJSON(t, srv, http.MethodPost, "/api/v1/generate/test-cases", GenerateTestCasesRequest{
		URL:          "https://shop.example.com/checkout",
		Requirements: []string{"Checkout succeeds with a valid card"},
	})
	require.Equal(t, http.StatusAccepted, w.Code, "body: %s", w.Body.String())
	return decodeJSON[AcceptedResponse](t, w).RequestID
}
