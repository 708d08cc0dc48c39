package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/ent/securityauditlog"
	"github.com/qaforge/qaforge/pkg/models"
)

// AuditService appends safety guard findings to the append-only audit log.
// It satisfies the validator's Auditor interface.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// Append records one safety finding. RequestID may be empty for ad-hoc
// validation calls that are not tied to a pipeline run.
func (s *AuditService) Append(httpCtx context.Context, rec models.AuditRecord) (*ent.SecurityAuditLog, error) {
	switch rec.Layer {
	case "static", "ast", "behavioral":
	default:
		return nil, NewValidationError("layer", fmt.Sprintf("unknown audit layer: %s", rec.Layer))
	}
	switch rec.Severity {
	case "critical", "high", "medium", "low":
	default:
		return nil, NewValidationError("severity", fmt.Sprintf("unknown severity: %s", rec.Severity))
	}
	if rec.Pattern == "" {
		return nil, NewValidationError("pattern", "pattern is required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.SecurityAuditLog.Create().
		SetID(uuid.New().String()).
		SetTestIndex(rec.TestIndex).
		SetLayer(securityauditlog.Layer(rec.Layer)).
		SetSeverity(securityauditlog.Severity(rec.Severity)).
		SetPattern(rec.Pattern).
		SetCreatedAt(time.Now())
	if rec.RequestID != "" {
		create = create.SetRequestID(rec.RequestID)
	}
	if rec.Snippet != "" {
		create = create.SetSnippet(rec.Snippet)
	}

	entry, err := create.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to append audit log: %w", err)
	}

	return entry, nil
}

// BoundAuditor stamps a request ID onto every record it forwards.
// It satisfies the validator's Auditor interface; the validator itself
// does not know which request it is checking.
type BoundAuditor struct {
	svc       *AuditService
	requestID string
}

// Auditor returns a sink bound to requestID. An empty requestID records
// findings as ad-hoc (not tied to any pipeline run).
func (s *AuditService) Auditor(requestID string) *BoundAuditor {
	return &BoundAuditor{svc: s, requestID: requestID}
}

// Append forwards one finding with the bound request ID.
func (b *BoundAuditor) Append(ctx context.Context, rec models.AuditRecord) error {
	if rec.RequestID == "" {
		rec.RequestID = b.requestID
	}
	_, err := b.svc.Append(ctx, rec)
	return err
}

// GetAuditLogsForRequest returns safety findings for a request, oldest first
func (s *AuditService) GetAuditLogsForRequest(ctx context.Context, requestID string) ([]*ent.SecurityAuditLog, error) {
	entries, err := s.client.SecurityAuditLog.Query().
		Where(securityauditlog.RequestIDEQ(requestID)).
		Order(ent.Asc(securityauditlog.FieldCreatedAt), ent.Asc(securityauditlog.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}

	return entries, nil
}

// ListRecentAuditLogs returns the newest findings across all requests,
// optionally filtered by severity.
func (s *AuditService) ListRecentAuditLogs(ctx context.Context, severity string, limit int) ([]*ent.SecurityAuditLog, error) {
	if limit <= 0 {
		limit = 50
	}

	query := s.client.SecurityAuditLog.Query()
	if severity != "" {
		query = query.Where(securityauditlog.SeverityEQ(securityauditlog.Severity(severity)))
	}

	entries, err := query.
		Order(ent.Desc(securityauditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	return entries, nil
}
