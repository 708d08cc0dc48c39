package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/pkg/models"
)

// RequestService manages generation request lifecycle: creation, status
// transitions, and the queue-facing claim/heartbeat/orphan operations.
// The requests table doubles as the work queue, so claim semantics live
// here next to the other status transitions.
type RequestService struct {
	client *ent.Client
}

// NewRequestService creates a new RequestService
func NewRequestService(client *ent.Client) *RequestService {
	return &RequestService{client: client}
}

// CreateRequest validates and persists a new generation request in pending
// status. Workers pick it up from there.
func (s *RequestService) CreateRequest(httpCtx context.Context, input models.CreateRequestInput) (*ent.Request, error) {
	if input.RequestID == "" {
		return nil, NewValidationError("request_id", "request_id is required")
	}
	if len(input.Requirements) == 0 {
		return nil, NewValidationError("requirements", "at least one requirement is required")
	}
	for i, r := range input.Requirements {
		if r == "" {
			return nil, NewValidationError("requirements", fmt.Sprintf("requirement %d is empty", i))
		}
	}

	switch input.RequestType {
	case models.RequestTypeUI:
		if input.URL == "" {
			return nil, NewValidationError("url", "url is required for ui requests")
		}
	case models.RequestTypeAPI:
		if input.OpenAPIURL == "" && input.OpenAPIContent == "" {
			return nil, NewValidationError("openapi_url", "openapi_url or openapi_content is required for api requests")
		}
	default:
		return nil, NewValidationError("request_type", fmt.Sprintf("unknown request_type: %s", input.RequestType))
	}

	for _, tt := range input.TestTypes {
		switch tt {
		case "positive", "negative", "boundary":
		default:
			return nil, NewValidationError("test_types", fmt.Sprintf("unknown test type: %s", tt))
		}
	}

	// Use background context with timeout for the critical write so an
	// abandoned HTTP request cannot leave a half-created row.
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.Request.Create().
		SetID(input.RequestID).
		SetRequestType(request.RequestType(input.RequestType)).
		SetRequirements(input.Requirements).
		SetStatus(request.StatusPending).
		SetCreatedAt(time.Now())

	if input.URL != "" {
		create = create.SetURL(input.URL)
	}
	if len(input.TestTypes) > 0 {
		create = create.SetTestTypes(input.TestTypes)
	}
	if input.OpenAPIURL != "" {
		create = create.SetOpenapiURL(input.OpenAPIURL)
	}
	if input.OpenAPIContent != "" {
		create = create.SetOpenapiContent(input.OpenAPIContent)
	}
	if len(input.Options) > 0 {
		create = create.SetOptions(input.Options)
	}

	req, err := create.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return req, nil
}

// GetRequestOptions controls which edges GetRequest loads.
type GetRequestOptions struct {
	IncludeTests    bool
	IncludeMetrics  bool
	IncludeCoverage bool
}

// GetRequest retrieves a request by ID, optionally with related entities
func (s *RequestService) GetRequest(ctx context.Context, requestID string, opts GetRequestOptions) (*ent.Request, error) {
	query := s.client.Request.Query().
		Where(request.IDEQ(requestID))

	if opts.IncludeTests {
		query = query.WithTestCases()
	}
	if opts.IncludeMetrics {
		query = query.WithMetrics()
	}
	if opts.IncludeCoverage {
		query = query.WithCoverage()
	}

	req, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	return req, nil
}

// ListRequests lists requests with filtering and pagination
func (s *RequestService) ListRequests(ctx context.Context, filters models.RequestFilters) (*models.RequestListResponse, error) {
	query := s.client.Request.Query()

	if filters.Status != "" {
		query = query.Where(request.StatusEQ(request.Status(filters.Status)))
	}
	if filters.RequestType != "" {
		query = query.Where(request.RequestTypeEQ(request.RequestType(filters.RequestType)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count requests: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	requests, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(request.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return &models.RequestListResponse{
		Requests:   requests,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateStatus updates a request's status. Terminal statuses also stamp
// completed_at.
func (s *RequestService) UpdateStatus(ctx context.Context, requestID string, status request.Status) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Request.UpdateOneID(requestID).
		SetStatus(status)

	if models.IsTerminalStatus(string(status)) {
		update = update.SetCompletedAt(time.Now())
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update request status: %w", err)
	}

	return nil
}

// MarkCompleted transitions a request to completed and records the result
// summary.
func (s *RequestService) MarkCompleted(ctx context.Context, requestID string, summary models.ResultSummary) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Request.UpdateOneID(requestID).
		SetStatus(request.StatusCompleted).
		SetResultSummary(map[string]interface{}{
			"tests_generated":  summary.TestsGenerated,
			"tests_valid":      summary.TestsValid,
			"duplicates_found": summary.DuplicatesFound,
			"coverage_score":   summary.CoverageScore,
			"average_score":    summary.AverageScore,
			"duration_ms":      summary.DurationMS,
		}).
		SetCompletedAt(time.Now()).
		ClearPodID().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark request completed: %w", err)
	}

	return nil
}

// MarkFailed transitions a request to failed with a stable error code
func (s *RequestService) MarkFailed(ctx context.Context, requestID, errorCode, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Request.UpdateOneID(requestID).
		SetStatus(request.StatusFailed).
		SetErrorCode(errorCode).
		SetErrorMessage(errorMessage).
		SetCompletedAt(time.Now()).
		ClearPodID().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark request failed: %w", err)
	}

	return nil
}

// MarkCancelled unconditionally transitions a request to cancelled. Workers
// use CancelIfOwned instead so a lost claim never overwrites the new owner.
func (s *RequestService) MarkCancelled(ctx context.Context, requestID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Request.UpdateOneID(requestID).
		SetStatus(request.StatusCancelled).
		SetErrorCode(models.CodeCancelled).
		SetCompletedAt(time.Now()).
		ClearPodID().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark request cancelled: %w", err)
	}

	return nil
}

// CompleteIfOwned transitions a request to completed only while podID still
// owns it. Returns false when ownership was lost (orphan recovery requeued the
// request and another pod may have claimed it); the row is left untouched so
// the new owner's state survives.
func (s *RequestService) CompleteIfOwned(ctx context.Context, requestID, podID string, summary models.ResultSummary) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Request.Update().
		Where(
			request.IDEQ(requestID),
			request.PodIDEQ(podID),
		).
		SetStatus(request.StatusCompleted).
		SetResultSummary(map[string]interface{}{
			"tests_generated":  summary.TestsGenerated,
			"tests_valid":      summary.TestsValid,
			"duplicates_found": summary.DuplicatesFound,
			"coverage_score":   summary.CoverageScore,
			"average_score":    summary.AverageScore,
			"duration_ms":      summary.DurationMS,
		}).
		SetCompletedAt(time.Now()).
		ClearPodID().
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to mark request completed: %w", err)
	}

	return count > 0, nil
}

// FailIfOwned transitions a request to failed only while podID still owns it.
// Returns false when ownership was lost.
func (s *RequestService) FailIfOwned(ctx context.Context, requestID, podID, errorCode, errorMessage string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Request.Update().
		Where(
			request.IDEQ(requestID),
			request.PodIDEQ(podID),
		).
		SetStatus(request.StatusFailed).
		SetErrorCode(errorCode).
		SetErrorMessage(errorMessage).
		SetCompletedAt(time.Now()).
		ClearPodID().
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to mark request failed: %w", err)
	}

	return count > 0, nil
}

// CancelIfOwned transitions a request to cancelled only while podID still
// owns it. Returns false when ownership was lost.
func (s *RequestService) CancelIfOwned(ctx context.Context, requestID, podID string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Request.Update().
		Where(
			request.IDEQ(requestID),
			request.PodIDEQ(podID),
		).
		SetStatus(request.StatusCancelled).
		SetErrorCode(models.CodeCancelled).
		SetCompletedAt(time.Now()).
		ClearPodID().
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to mark request cancelled: %w", err)
	}

	return count > 0, nil
}

// CancelIfPending atomically transitions a pending request to cancelled.
// Returns false when the request was no longer pending — in that case the
// caller must route cancellation through the worker pool instead.
func (s *RequestService) CancelIfPending(ctx context.Context, requestID string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Request.Update().
		Where(
			request.IDEQ(requestID),
			request.StatusEQ(request.StatusPending),
		).
		SetStatus(request.StatusCancelled).
		SetErrorCode(models.CodeCancelled).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to cancel pending request: %w", err)
	}

	return count > 0, nil
}

// ResumeFailed atomically re-queues a failed request: status back to pending
// with error fields cleared. The checkpoint stays, so completed stages are
// skipped on re-execution. Returns false when the request was not failed.
func (s *RequestService) ResumeFailed(ctx context.Context, requestID string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Request.Update().
		Where(
			request.IDEQ(requestID),
			request.StatusEQ(request.StatusFailed),
		).
		SetStatus(request.StatusPending).
		ClearErrorCode().
		ClearErrorMessage().
		ClearPodID().
		ClearLastHeartbeatAt().
		ClearCompletedAt().
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to resume request: %w", err)
	}

	return count > 0, nil
}

// ClaimNextPending atomically claims the oldest pending request for podID
// using FOR UPDATE SKIP LOCKED, so concurrent workers never block each other
// on the same row. Returns (nil, nil) when nothing is pending.
func (s *RequestService) ClaimNextPending(ctx context.Context, podID string) (*ent.Request, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	req, err := tx.Request.Query().
		Where(request.StatusEQ(request.StatusPending)).
		Order(ent.Asc(request.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // Nothing pending
		}
		return nil, fmt.Errorf("failed to query pending request: %w", err)
	}

	update := tx.Request.UpdateOneID(req.ID).
		SetStatus(request.StatusReconnaissance).
		SetPodID(podID).
		SetLastHeartbeatAt(time.Now())
	if req.StartedAt == nil {
		update = update.SetStartedAt(time.Now())
	}

	req, err = update.Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return req, nil
}

// CountActive counts requests currently being processed across all replicas.
// Used to enforce the global concurrency limit before claiming.
func (s *RequestService) CountActive(ctx context.Context) (int, error) {
	statuses := make([]request.Status, 0, len(models.ActiveStatuses))
	for _, st := range models.ActiveStatuses {
		statuses = append(statuses, request.Status(st))
	}

	count, err := s.client.Request.Query().
		Where(request.StatusIn(statuses...)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active requests: %w", err)
	}

	return count, nil
}

// CountPending counts requests waiting in the queue
func (s *RequestService) CountPending(ctx context.Context) (int, error) {
	count, err := s.client.Request.Query().
		Where(request.StatusEQ(request.StatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending requests: %w", err)
	}

	return count, nil
}

// CountActiveForPod counts in-flight requests owned by one pod
func (s *RequestService) CountActiveForPod(ctx context.Context, podID string) (int, error) {
	statuses := make([]request.Status, 0, len(models.ActiveStatuses))
	for _, st := range models.ActiveStatuses {
		statuses = append(statuses, request.Status(st))
	}

	count, err := s.client.Request.Query().
		Where(
			request.StatusIn(statuses...),
			request.PodIDEQ(podID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active requests for pod: %w", err)
	}

	return count, nil
}

// Heartbeat refreshes last_heartbeat_at on a request owned by podID.
// Returns ErrConcurrentModification when the request is no longer owned by
// this pod (orphan recovery reassigned it, or it reached a terminal status).
func (s *RequestService) Heartbeat(ctx context.Context, requestID, podID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	statuses := make([]request.Status, 0, len(models.ActiveStatuses))
	for _, st := range models.ActiveStatuses {
		statuses = append(statuses, request.Status(st))
	}

	count, err := s.client.Request.Update().
		Where(
			request.IDEQ(requestID),
			request.PodIDEQ(podID),
			request.StatusIn(statuses...),
		).
		SetLastHeartbeatAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat request: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}

	return nil
}

// FindOrphaned finds in-flight requests whose heartbeat is older than the
// threshold, meaning their worker died mid-pipeline.
func (s *RequestService) FindOrphaned(ctx context.Context, threshold time.Duration) ([]*ent.Request, error) {
	cutoff := time.Now().Add(-threshold)

	statuses := make([]request.Status, 0, len(models.ActiveStatuses))
	for _, st := range models.ActiveStatuses {
		statuses = append(statuses, request.Status(st))
	}

	requests, err := s.client.Request.Query().
		Where(
			request.StatusIn(statuses...),
			request.LastHeartbeatAtNotNil(),
			request.LastHeartbeatAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned requests: %w", err)
	}

	return requests, nil
}

// FindOwnedBy finds in-flight requests claimed by one pod. Used for the
// one-time startup scan after a pod restart.
func (s *RequestService) FindOwnedBy(ctx context.Context, podID string) ([]*ent.Request, error) {
	statuses := make([]request.Status, 0, len(models.ActiveStatuses))
	for _, st := range models.ActiveStatuses {
		statuses = append(statuses, request.Status(st))
	}

	requests, err := s.client.Request.Query().
		Where(
			request.StatusIn(statuses...),
			request.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find requests owned by pod: %w", err)
	}

	return requests, nil
}

// RequeueOrphan returns an orphaned request to the pending queue, bumping
// requeue_count. The conditional update guards against the original worker
// coming back: if the row changed since the orphan scan, nothing happens.
// Returns false when the request was no longer in an active status.
func (s *RequestService) RequeueOrphan(ctx context.Context, requestID string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	statuses := make([]request.Status, 0, len(models.ActiveStatuses))
	for _, st := range models.ActiveStatuses {
		statuses = append(statuses, request.Status(st))
	}

	count, err := s.client.Request.Update().
		Where(
			request.IDEQ(requestID),
			request.StatusIn(statuses...),
		).
		SetStatus(request.StatusPending).
		ClearPodID().
		ClearLastHeartbeatAt().
		AddRequeueCount(1).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to requeue orphaned request: %w", err)
	}

	return count > 0, nil
}
