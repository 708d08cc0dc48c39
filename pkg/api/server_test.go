package api

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/database"
	"github.com/qaforge/qaforge/pkg/events"
	"github.com/qaforge/qaforge/pkg/queue"
	"github.com/qaforge/qaforge/pkg/services"
	testdb "github.com/qaforge/qaforge/test/database"
)

// stubEmbedder hashes text into a deterministic vector so optimizer tests
// run without an LLM.
type stubEmbedder struct{}

func (stubEmbedder) GetEmbedding(_ context.Context, text string) ([]float64, error) {
	sum := sha256.Sum256([]byte(text))
	vec := make([]float64, 8)
	for i := range vec {
		vec[i] = float64(sum[i]) + 1
	}
	return vec, nil
}

func testAPIConfig() *config.Config {
	return &config.Config{
		Validator: config.ValidatorConfig{Fanout: 4},
		Optimizer: config.OptimizerConfig{SemanticThreshold: 0.999},
	}
}

func testAPIQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             1,
		MaxConcurrentRequests:   1,
		PollInterval:            time.Second,
		HeartbeatInterval:       time.Second,
		GracefulShutdownTimeout: time.Second,
		OrphanDetectionInterval: time.Minute,
		OrphanThreshold:         time.Minute,
		MaxRequeues:             2,
	}
}

// newTestServer builds a server over a fresh test schema. The worker pool
// is constructed but not started; handlers only consult its registry.
func newTestServer(t *testing.T) (*Server, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)

	pool := queue.NewWorkerPool("api-test-pod", client.Client, testAPIQueueConfig(), nil, nil)
	manager := events.NewConnectionManager(
		events.NewEventServiceAdapter(services.NewEventService(client.Client)), 5*time.Second)

	srv := NewServer(testAPIConfig(), client, stubEmbedder{}, pool, manager,
		slog.New(slog.DiscardHandler))
	return srv, client
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, w.Code, "body: %s", w.Body.String())
	resp := decodeJSON[errorResponse](t, w)
	assert.Equal(t, code, resp.Code)
	assert.NotEmpty(t, resp.Error)
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	resp := decodeJSON[HealthResponse](t, w)
	// Pool was never started, so overall status degrades while the DB is fine.
	assert.Equal(t, "degraded", resp.Status)
	require.NotNil(t, resp.Database)
	assert.Equal(t, "healthy", resp.Database.Status)
	require.NotNil(t, resp.Pool)
	assert.Equal(t, "api-test-pod", resp.Pool.PodID)
	assert.True(t, resp.Pool.DBReachable)
	assert.Zero(t, resp.WSConnections)
}
