package services

import (
	"context"
	"fmt"
	"time"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/ent/event"
)

// EventService manages the durable event log that backs WebSocket and SSE
// catch-up. Live delivery goes through PostgreSQL NOTIFY; this service only
// touches the persisted copies.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// CreateEvent persists an event outside the publisher's transactional path.
// Used by tests and maintenance tooling; the pipeline publishes through
// events.EventPublisher so persist and NOTIFY share one transaction.
func (s *EventService) CreateEvent(httpCtx context.Context, requestID, channel string, payload map[string]interface{}) (*ent.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.Event.Create().
		SetChannel(channel).
		SetPayload(payload).
		SetCreatedAt(time.Now())
	if requestID != "" {
		create = create.SetRequestID(requestID)
	}

	evt, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return evt, nil
}

// GetEventsSince retrieves events on a channel with ID greater than sinceID,
// oldest first. A limit of 0 means no limit.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID int64, limit int) ([]*ent.Event, error) {
	query := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

// CleanupRequestEvents removes all events for a request
func (s *EventService) CleanupRequestEvents(ctx context.Context, requestID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.RequestIDEQ(requestID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup request events: %w", err)
	}

	return count, nil
}

// CleanupOrphanedEvents removes events older than the retention window
func (s *EventService) CleanupOrphanedEvents(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup orphaned events: %w", err)
	}

	return count, nil
}
