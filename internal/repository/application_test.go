package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longdzai22/KolConnection/internal/common"
	"github.com/longdzai22/KolConnection/internal/store"
	"github.com/longdzai22/KolConnection/pkg/model"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	return New(store.NewMemory())
}

func testApplication(candidate, job string) model.Application {
	return model.Application{
		JobID:          job,
		JobTitle:       "Dev",
		PosterEmail:    "p@x.com",
		CandidateEmail: candidate,
		CandidateName:  "Alice",
	}
}

func TestApplicationCreate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	app, err := repo.Applications.Create(ctx, testApplication("a@x.com", "job1"))
	require.NoError(t, err)
	assert.Equal(t, model.StatusApplied, app.Status)
	assert.Empty(t, app.Log)
	assert.NotZero(t, app.CreatedAt)
}

func TestApplicationCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Applications.Create(ctx, testApplication("a@x.com", "job1"))
	require.NoError(t, err)

	_, err = repo.Applications.Create(ctx, testApplication("a@x.com", "job1"))
	assert.ErrorIs(t, err, common.ErrDuplicateApplication)

	// A different job for the same candidate is fine.
	_, err = repo.Applications.Create(ctx, testApplication("a@x.com", "job2"))
	assert.NoError(t, err)
}

func TestApplicationListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Applications.Create(ctx, testApplication("a@x.com", "job1"))
	require.NoError(t, err)
	_, err = repo.Applications.Create(ctx, testApplication("b@x.com", "job1"))
	require.NoError(t, err)

	byPoster, err := repo.Applications.ListByPoster(ctx, "p@x.com")
	require.NoError(t, err)
	require.Len(t, byPoster, 2)
	assert.Equal(t, "b@x.com", byPoster[0].CandidateEmail)

	byCandidate, err := repo.Applications.ListByCandidate(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, byCandidate, 1)
}

func TestApplicationUpdateStatusPrependsLog(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Applications.Create(ctx, testApplication("a@x.com", "job1"))
	require.NoError(t, err)

	first := model.LogEntry{TS: 1, By: "p@x.com", Action: model.ActionOfferSent, OfferID: 10}
	_, err = repo.Applications.LinkOffer(ctx, "a@x.com", "job1", "p@x.com", 10, first)
	require.NoError(t, err)

	second := model.LogEntry{TS: 2, By: "a@x.com", Action: model.ActionOfferAccepted, OfferID: 10}
	app, err := repo.Applications.UpdateStatus(ctx, "a@x.com", "job1", "p@x.com", model.StatusOfferedAccepted, second)
	require.NoError(t, err)

	require.Len(t, app.Log, 2)
	assert.Equal(t, model.ActionOfferAccepted, app.Log[0].Action)
	assert.Equal(t, model.ActionOfferSent, app.Log[1].Action)
	assert.Equal(t, int64(10), app.OfferID)
	assert.Equal(t, model.StatusOfferedAccepted, app.Status)
}

func TestApplicationUpdateStatusNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Applications.UpdateStatus(ctx, "a@x.com", "job1", "p@x.com", model.StatusRejected, model.LogEntry{})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestApplicationDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Applications.Create(ctx, testApplication("a@x.com", "job1"))
	require.NoError(t, err)

	require.NoError(t, repo.Applications.Delete(ctx, "a@x.com", "job1", "p@x.com"))
	_, err = repo.Applications.FindByCandidateAndJob(ctx, "a@x.com", "job1")
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = repo.Applications.Delete(ctx, "a@x.com", "job1", "p@x.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
