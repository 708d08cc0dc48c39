package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/pkg/database"
	"github.com/qaforge/qaforge/pkg/services"
	testdb "github.com/qaforge/qaforge/test/database"
	"github.com/qaforge/qaforge/test/util"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	requestID    string // Pre-created Request (satisfies FK on events)
	channel      string // request:<requestID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create Request required by FK on events table
	requestID := uuid.New().String()
	_, err := dbClient.Request.Create().
		SetID(requestID).
		SetRequestType(request.RequestTypeUI).
		SetURL("https://example.com/login").
		SetRequirements([]string{"user can log in"}).
		SetStatus(request.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	channel := RequestChannel(requestID)

	// Real components
	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		requestID:    requestID,
		channel:      channel,
	}
}

// connectWS opens a WebSocket to the test server and returns the
// connection. The connection is automatically closed on test cleanup.
func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the env's channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	// Read connection.established
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	// Read subscription.confirmed
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Wait for the LISTEN to complete on the NotifyListener's dedicated
	// connection, polling instead of sleeping.
	require.Eventually(t, func() bool {
		return env.listener.isListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish first event (stage started)
	err := env.publisher.PublishStageStatus(ctx, env.requestID, StageStatusPayload{
		Type:       EventTypeStageStatus,
		RequestID:  env.requestID,
		Stage:      "reconnaissance",
		StageIndex: 1,
		Status:     StageStatusStarted,
		Attempt:    1,
		Timestamp:  time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Publish second event (stage completed)
	err = env.publisher.PublishStageStatus(ctx, env.requestID, StageStatusPayload{
		Type:       EventTypeStageStatus,
		RequestID:  env.requestID,
		Stage:      "reconnaissance",
		StageIndex: 1,
		Status:     StageStatusCompleted,
		Timestamp:  time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Query persisted events via EventService
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeStageStatus, events[0].Payload["type"])
	assert.Equal(t, StageStatusStarted, events[0].Payload["status"])

	assert.Equal(t, StageStatusCompleted, events[1].Payload["status"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish transient event (progress counters)
	err := env.publisher.PublishGenerationProgress(ctx, env.requestID, GenerationProgressPayload{
		Type:           EventTypeGenerationProgress,
		RequestID:      env.requestID,
		Stage:          "generation",
		TestsGenerated: 3,
		Timestamp:      time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Query DB — should have zero persisted events
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Connect, subscribe, and wait for LISTEN to propagate
	conn := env.subscribeAndWait(t)

	// Publish a persistent event via EventPublisher
	err := env.publisher.PublishRequestStatus(ctx, env.requestID, RequestStatusPayload{
		Type:      EventTypeRequestStatus,
		RequestID: env.requestID,
		Status:    "generation",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Read from WebSocket — the event should arrive via pg_notify → listener → manager
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeRequestStatus, msg["type"])
	assert.Equal(t, "generation", msg["status"])
	assert.Equal(t, env.requestID, msg["request_id"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_TransientEventDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Connect, subscribe, wait for LISTEN
	conn := env.subscribeAndWait(t)

	// Publish transient event (no DB persistence)
	err := env.publisher.PublishGenerationProgress(ctx, env.requestID, GenerationProgressPayload{
		Type:           EventTypeGenerationProgress,
		RequestID:      env.requestID,
		Stage:          "validation",
		TestsValidated: 5,
		Message:        "validating 5/8",
		Timestamp:      time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Should arrive via WebSocket
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeGenerationProgress, msg["type"])
	assert.Equal(t, "validating 5/8", msg["message"])

	// Verify nothing was persisted
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted")
}

func TestIntegration_PipelineEventSequence(t *testing.T) {
	// Verifies the event protocol a dashboard client consumes:
	// 1. stage.status started/completed per stage (persistent)
	// 2. generation.progress counters in between (transient)
	// 3. request.completed with the result summary (persistent)
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	// 1. Stage started (persistent)
	err := env.publisher.PublishStageStatus(ctx, env.requestID, StageStatusPayload{
		Type:       EventTypeStageStatus,
		RequestID:  env.requestID,
		Stage:      "generation",
		StageIndex: 2,
		Status:     StageStatusStarted,
		Attempt:    1,
		Timestamp:  time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeStageStatus, msg["type"])
	assert.Equal(t, StageStatusStarted, msg["status"])

	// 2. Progress counters (transient)
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishGenerationProgress(ctx, env.requestID, GenerationProgressPayload{
			Type:           EventTypeGenerationProgress,
			RequestID:      env.requestID,
			Stage:          "generation",
			TestsGenerated: i,
			Timestamp:      time.Now().Format(time.RFC3339Nano),
		})
		require.NoError(t, err)

		msg := readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeGenerationProgress, msg["type"])
		assert.Equal(t, float64(i), msg["tests_generated"])
	}

	// 3. Stage completed, then request completed (both persistent)
	err = env.publisher.PublishStageStatus(ctx, env.requestID, StageStatusPayload{
		Type:       EventTypeStageStatus,
		RequestID:  env.requestID,
		Stage:      "generation",
		StageIndex: 2,
		Status:     StageStatusCompleted,
		Timestamp:  time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, StageStatusCompleted, msg["status"])

	err = env.publisher.PublishRequestCompleted(ctx, env.requestID, RequestCompletedPayload{
		Type:      EventTypeRequestCompleted,
		RequestID: env.requestID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeRequestCompleted, msg["type"])

	// Only the 3 persistent events should be in DB; the 3 progress
	// counters are transient — not persisted
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 3, "only persistent events should be in DB")
	assert.Equal(t, EventTypeStageStatus, events[0].Payload["type"])
	assert.Equal(t, EventTypeStageStatus, events[1].Payload["type"])
	assert.Equal(t, EventTypeRequestCompleted, events[2].Payload["type"])
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent events
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishStageStatus(ctx, env.requestID, StageStatusPayload{
			Type:       EventTypeStageStatus,
			RequestID:  env.requestID,
			Stage:      "generation",
			StageIndex: i,
			Status:     StageStatusStarted,
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		})
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection)
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe — auto-catchup delivers all 3 prior events immediately
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Read all 3 auto-catchup events in order
	for i := 1; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeStageStatus, msg["type"])
		assert.Equal(t, float64(i), msg["stage_index"])
	}

	// Explicit catchup from the first event's ID — should return only events 2 and 3
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for i := 2; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, float64(i), msg["stage_index"])
	}

	// No more messages — verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}
