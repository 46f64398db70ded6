package repository

import (
	"context"
	"testing"
	"time"

	"github.com/evanmorales/dueline/internal/domain"
	"github.com/evanmorales/dueline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkItemRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteWorkItemRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	w := testutil.NewWorkItem("Backend role", testutil.WithPayment("$2,000"))
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, w.Title, got.Title)
	assert.Equal(t, w.Deadline, got.Deadline)
	assert.Equal(t, domain.StatusUpcoming, got.Status)
	assert.Equal(t, "$2,000", got.Payment)
}

func TestWorkItemRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteWorkItemRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkItemRepo_FetchOrderedByCreation(t *testing.T) {
	repo := NewSQLiteWorkItemRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := testutil.NewWorkItem("first")
	second := testutil.NewWorkItem("second")
	second.CreatedAt = second.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	items, err := repo.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
}

func TestWorkItemRepo_UpdateStatus(t *testing.T) {
	repo := NewSQLiteWorkItemRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	w := testutil.NewWorkItem("app")
	require.NoError(t, repo.Create(ctx, w))

	require.NoError(t, repo.UpdateStatus(ctx, w.ID, domain.StatusOngoing))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOngoing, got.Status)
}

func TestWorkItemRepo_UpdateStatusMissing(t *testing.T) {
	repo := NewSQLiteWorkItemRepo(testutil.NewTestDB(t))

	err := repo.UpdateStatus(context.Background(), "nope", domain.StatusOngoing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkItemRepo_Delete(t *testing.T) {
	repo := NewSQLiteWorkItemRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	w := testutil.NewWorkItem("gone")
	require.NoError(t, repo.Create(ctx, w))
	require.NoError(t, repo.Delete(ctx, w.ID))

	_, err := repo.GetByID(ctx, w.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkItemRepo_MalformedDeadlineRoundTrips(t *testing.T) {
	// The repo stores deadlines verbatim; rejecting bad values is the
	// enrichment pass's job.
	repo := NewSQLiteWorkItemRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	w := testutil.NewWorkItem("odd", testutil.WithDeadline("whenever"))
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "whenever", got.Deadline)
}
