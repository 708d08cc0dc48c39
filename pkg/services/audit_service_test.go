package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/ent/securityauditlog"
	"github.com/qaforge/qaforge/pkg/models"
	testdb "github.com/qaforge/qaforge/test/database"
)

func TestAuditService_Append(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAuditService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)

	t.Run("appends a finding for a request", func(t *testing.T) {
		entry, err := svc.Append(ctx, models.AuditRecord{
			RequestID: req.ID,
			TestIndex: 2,
			Layer:     "static",
			Severity:  "critical",
			Pattern:   "os.system",
			Snippet:   "os.system('rm -rf /')",
		})
		require.NoError(t, err)
		assert.Equal(t, securityauditlog.LayerStatic, entry.Layer)
		assert.Equal(t, securityauditlog.SeverityCritical, entry.Severity)
		require.NotNil(t, entry.RequestID)
		assert.Equal(t, req.ID, *entry.RequestID)
	})

	t.Run("appends ad-hoc finding without a request", func(t *testing.T) {
		entry, err := svc.Append(ctx, models.AuditRecord{
			Layer:    "ast",
			Severity: "high",
			Pattern:  "subprocess",
		})
		require.NoError(t, err)
		assert.Nil(t, entry.RequestID)
	})

	t.Run("rejects unknown layer", func(t *testing.T) {
		_, err := svc.Append(ctx, models.AuditRecord{
			Layer:    "dynamic",
			Severity: "low",
			Pattern:  "eval",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects missing pattern", func(t *testing.T) {
		_, err := svc.Append(ctx, models.AuditRecord{
			Layer:    "static",
			Severity: "low",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestAuditService_Listing(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAuditService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)

	for _, rec := range []models.AuditRecord{
		{RequestID: req.ID, Layer: "static", Severity: "critical", Pattern: "os.system"},
		{RequestID: req.ID, Layer: "ast", Severity: "medium", Pattern: "open"},
		{Layer: "behavioral", Severity: "critical", Pattern: "DELETE outside test scope"},
	} {
		_, err := svc.Append(ctx, rec)
		require.NoError(t, err)
	}

	t.Run("lists findings for a request", func(t *testing.T) {
		entries, err := svc.GetAuditLogsForRequest(ctx, req.ID)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("lists recent findings filtered by severity", func(t *testing.T) {
		entries, err := svc.ListRecentAuditLogs(ctx, "critical", 10)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("lists all recent findings", func(t *testing.T) {
		entries, err := svc.ListRecentAuditLogs(ctx, "", 10)
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})
}
