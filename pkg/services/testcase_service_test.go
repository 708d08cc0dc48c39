package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/pkg/models"
	testdb "github.com/qaforge/qaforge/test/database"
)

func TestTestCaseService_CreateTestCases(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTestCaseService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)

	t.Run("persists a batch", func(t *testing.T) {
		created, err := svc.CreateTestCases(ctx, req.ID, []models.NewTestCase{
			{Name: "test_login_positive", Code: "def test_login_positive():\n    pass\n", TestType: "positive", Score: 85, Valid: true},
			{Name: "test_login_bad_password", Code: "def test_login_bad_password():\n    pass\n", TestType: "negative", Score: 70, Valid: true, Description: "Rejects wrong password"},
		})
		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.NotEmpty(t, created[0].ID)
		assert.Equal(t, req.ID, created[0].RequestID)
	})

	t.Run("rejects duplicate name within a request", func(t *testing.T) {
		_, err := svc.CreateTestCases(ctx, req.ID, []models.NewTestCase{
			{Name: "test_login_positive", Code: "def test_login_positive():\n    pass\n"},
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("same name is fine on another request", func(t *testing.T) {
		other := createTestRequest(t, client.Client)
		created, err := svc.CreateTestCases(ctx, other.ID, []models.NewTestCase{
			{Name: "test_login_positive", Code: "def test_login_positive():\n    pass\n"},
		})
		require.NoError(t, err)
		assert.Len(t, created, 1)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		created, err := svc.CreateTestCases(ctx, req.ID, nil)
		require.NoError(t, err)
		assert.Nil(t, created)
	})

	t.Run("rejects test without code", func(t *testing.T) {
		_, err := svc.CreateTestCases(ctx, req.ID, []models.NewTestCase{
			{Name: "test_empty"},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestTestCaseService_ListTestCases(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTestCaseService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)
	minScore := 75
	valid := true

	_, err := svc.CreateTestCases(ctx, req.ID, []models.NewTestCase{
		{Name: "test_a", Code: "def test_a():\n    pass\n", TestType: "positive", Score: 90, Valid: true},
		{Name: "test_b", Code: "def test_b():\n    pass\n", TestType: "negative", Score: 60, Valid: true},
		{Name: "test_c", Code: "def test_c():\n    pass\n", TestType: "positive", Score: 40, Valid: false},
	})
	require.NoError(t, err)

	t.Run("filters by request id", func(t *testing.T) {
		resp, err := svc.ListTestCases(ctx, models.TestCaseFilters{RequestID: req.ID})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
	})

	t.Run("filters by test type", func(t *testing.T) {
		resp, err := svc.ListTestCases(ctx, models.TestCaseFilters{RequestID: req.ID, TestType: "positive"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("filters by minimum score", func(t *testing.T) {
		resp, err := svc.ListTestCases(ctx, models.TestCaseFilters{RequestID: req.ID, MinScore: &minScore})
		require.NoError(t, err)
		require.Equal(t, 1, resp.TotalCount)
		assert.Equal(t, "test_a", resp.TestCases[0].Name)
	})

	t.Run("filters by validity", func(t *testing.T) {
		resp, err := svc.ListTestCases(ctx, models.TestCaseFilters{RequestID: req.ID, Valid: &valid})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("paginates", func(t *testing.T) {
		resp, err := svc.ListTestCases(ctx, models.TestCaseFilters{RequestID: req.ID, Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.TestCases, 1)
	})
}

func TestTestCaseService_GetTestCasesForRequest(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTestCaseService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)

	_, err := svc.CreateTestCases(ctx, req.ID, []models.NewTestCase{
		{Name: "test_first", Code: "def test_first():\n    pass\n"},
		{Name: "test_second", Code: "def test_second():\n    pass\n"},
	})
	require.NoError(t, err)

	testCases, err := svc.GetTestCasesForRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Len(t, testCases, 2)
}

func TestTestCaseService_SearchTestCases(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTestCaseService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)

	_, err := svc.CreateTestCases(ctx, req.ID, []models.NewTestCase{
		{Name: "test_checkout", Code: "def test_checkout():\n    page.click('#checkout-button')\n"},
		{Name: "test_search", Code: "def test_search():\n    page.fill('#query', 'laptop')\n"},
	})
	require.NoError(t, err)

	t.Run("finds tests by code content", func(t *testing.T) {
		results, err := svc.SearchTestCases(ctx, "laptop", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "test_search", results[0].Name)
	})

	t.Run("returns empty for no match", func(t *testing.T) {
		results, err := svc.SearchTestCases(ctx, "nonexistent", 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
