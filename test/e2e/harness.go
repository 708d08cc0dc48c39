// Package e2e boots a complete QAForge instance (API, worker pool, pipeline
// executor) over the shared test database and drives it through HTTP.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/pkg/api"
	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/database"
	"github.com/qaforge/qaforge/pkg/events"
	"github.com/qaforge/qaforge/pkg/queue"
	"github.com/qaforge/qaforge/pkg/services"
	testdb "github.com/qaforge/qaforge/test/database"
)

// TestApp is a running QAForge instance for one test.
type TestApp struct {
	Config   *config.Config
	DB       *database.Client
	LLM      *ScriptedLLM
	Explorer *StubExplorer
	Pool     *queue.WorkerPool
	HTTP     *httptest.Server

	t *testing.T
}

func e2eConfig() *config.Config {
	return &config.Config{
		Validator: config.ValidatorConfig{Fanout: 4},
		Optimizer: config.OptimizerConfig{SemanticThreshold: 0.999},
		Queue: config.QueueConfig{
			WorkerCount:             2,
			MaxConcurrentRequests:   10,
			PollInterval:            100 * time.Millisecond,
			HeartbeatInterval:       time.Second,
			GracefulShutdownTimeout: 5 * time.Second,
			OrphanDetectionInterval: time.Minute,
			OrphanThreshold:         time.Minute,
			MaxRequeues:             2,
		},
		Stages: config.StagesConfig{
			ReconTimeout:             5 * time.Second,
			ReconRetries:             1,
			ReconBackoff:             10 * time.Millisecond,
			GenerationTimeout:        5 * time.Second,
			GenerationRetries:        2,
			ValidationTimeoutPerTest: 5 * time.Second,
			ValidationTimeoutCap:     30 * time.Second,
			OptimizationTimeout:      5 * time.Second,
		},
	}
}

// NewTestApp boots the full stack with a scripted LLM and stub explorer.
// Everything is torn down via t.Cleanup.
func NewTestApp(t *testing.T, script ...LLMScriptEntry) *TestApp {
	t.Helper()

	cfg := e2eConfig()
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.DiscardHandler)

	llmClient := NewScriptedLLM(script...)
	explorer := &StubExplorer{}

	eventPublisher := events.NewEventPublisher(client.DB())
	connManager := events.NewConnectionManager(
		events.NewEventServiceAdapter(services.NewEventService(client.Client)), 5*time.Second)

	executor := queue.NewPipelineExecutor(cfg, client.Client, llmClient, explorer, eventPublisher, logger)
	pool := queue.NewWorkerPool("e2e-pod", client.Client, &cfg.Queue, executor, eventPublisher)
	require.NoError(t, pool.Start(context.Background()))
	t.Cleanup(pool.Stop)

	server := api.NewServer(cfg, client, llmClient, pool, connManager, logger)
	httpServer := httptest.NewServer(server.Router())
	t.Cleanup(httpServer.Close)

	return &TestApp{
		Config:   cfg,
		DB:       client,
		LLM:      llmClient,
		Explorer: explorer,
		Pool:     pool,
		HTTP:     httpServer,
		t:        t,
	}
}

// PostJSON sends a JSON body and decodes the JSON response into out (when
// out is non-nil). Returns the status code.
func (a *TestApp) PostJSON(path string, body any, out any) int {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(data)
	}
	resp, err := http.Post(a.HTTP.URL+path, "application/json", reader)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	if out != nil {
		data, err := io.ReadAll(resp.Body)
		require.NoError(a.t, err)
		require.NoError(a.t, json.Unmarshal(data, out), "body: %s", data)
	}
	return resp.StatusCode
}

// GetJSON decodes a GET response into out. Returns the status code.
func (a *TestApp) GetJSON(path string, out any) int {
	a.t.Helper()

	resp, err := http.Get(a.HTTP.URL + path)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	if out != nil {
		require.NoError(a.t, json.Unmarshal(data, out), "body: %s", data)
	}
	return resp.StatusCode
}

// Submit creates a UI generation request and returns its id.
func (a *TestApp) Submit(requirements []string) string {
	a.t.Helper()

	var accepted api.AcceptedResponse
	status := a.PostJSON("/api/v1/generate/test-cases", map[string]any{
		"url":          "https://shop.example.com/login",
		"requirements": requirements,
		"test_types":   []string{"positive", "negative"},
	}, &accepted)
	require.Equal(a.t, http.StatusAccepted, status)
	require.NotEmpty(a.t, accepted.RequestID)
	return accepted.RequestID
}

// AwaitStatus polls the task endpoint until it reports the wanted status.
func (a *TestApp) AwaitStatus(id, want string) api.TaskResponse {
	a.t.Helper()

	var task api.TaskResponse
	deadline := time.After(15 * time.Second)
	for {
		select {
		case <-deadline:
			a.t.Fatalf("request %s never reached status %q (last: %q)", id, want, task.Status)
		default:
			status := a.GetJSON("/api/v1/tasks/"+id, &task)
			require.Equal(a.t, http.StatusOK, status)
			if task.Status == want {
				return task
			}
			time.Sleep(50 * time.Millisecond)
		}
	}
}
