package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/pkg/models"
)

// createTestRequest persists a minimal UI request and returns it.
func createTestRequest(t *testing.T, client *ent.Client) *ent.Request {
	t.Helper()

	svc := NewRequestService(client)
	req, err := svc.CreateRequest(context.Background(), models.CreateRequestInput{
		RequestID:    uuid.New().String(),
		RequestType:  models.RequestTypeUI,
		URL:          "https://shop.example.com/login",
		Requirements: []string{"User can log in with valid credentials"},
	})
	require.NoError(t, err)
	return req
}
