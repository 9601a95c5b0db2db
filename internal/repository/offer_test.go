package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longdzai22/KolConnection/internal/common"
	"github.com/longdzai22/KolConnection/pkg/model"
)

func applied(t *testing.T, repo *Repository, candidate, job string) {
	t.Helper()
	_, err := repo.Applications.Create(context.Background(), testApplication(candidate, job))
	require.NoError(t, err)
}

func TestOfferCreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	applied(t, repo, "a@x.com", "job1")

	_, err := repo.Offers.Create(ctx, "p@x.com", "a@x.com", "job1", 0, "note")
	assert.ErrorIs(t, err, common.ErrInvalidOffer)

	_, err = repo.Offers.Create(ctx, "p@x.com", "a@x.com", "job1", -5, "note")
	assert.ErrorIs(t, err, common.ErrInvalidOffer)

	_, err = repo.Offers.Create(ctx, "p@x.com", "a@x.com", "job1", 100, "   ")
	assert.ErrorIs(t, err, common.ErrInvalidOffer)
}

func TestOfferCreateRequiresApplication(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Offers.Create(ctx, "p@x.com", "a@x.com", "job1", 100, "note")
	assert.ErrorIs(t, err, common.ErrNoApplication)
}

func TestOfferCreate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	applied(t, repo, "a@x.com", "job1")

	offer, err := repo.Offers.Create(ctx, "p@x.com", "a@x.com", "job1", 500, "  Great fit  ")
	require.NoError(t, err)
	assert.Equal(t, model.OfferSent, offer.Status)
	assert.Equal(t, "Great fit", offer.Note)
	assert.Equal(t, offer.CreatedAt, offer.ID())
	assert.NotZero(t, offer.ID())
}

func TestOfferIDsUnique(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	repo.Offers.now = func() int64 { return 42 }
	applied(t, repo, "a@x.com", "job1")

	first, err := repo.Offers.Create(ctx, "p@x.com", "a@x.com", "job1", 100, "one")
	require.NoError(t, err)
	second, err := repo.Offers.Create(ctx, "p@x.com", "a@x.com", "job1", 200, "two")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID())
}

func TestOfferSetStatus(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	applied(t, repo, "a@x.com", "job1")

	offer, err := repo.Offers.Create(ctx, "p@x.com", "a@x.com", "job1", 500, "note")
	require.NoError(t, err)

	got, err := repo.Offers.SetStatus(ctx, offer.ID(), "a@x.com", "job1", model.OfferAccepted)
	require.NoError(t, err)
	assert.Equal(t, model.OfferAccepted, got.Status)

	// Re-applying the current status is a no-op, not an error.
	got, err = repo.Offers.SetStatus(ctx, offer.ID(), "a@x.com", "job1", model.OfferAccepted)
	require.NoError(t, err)
	assert.Equal(t, model.OfferAccepted, got.Status)

	// But any other move off a settled status is illegal.
	_, err = repo.Offers.SetStatus(ctx, offer.ID(), "a@x.com", "job1", model.OfferDeclined)
	assert.ErrorIs(t, err, common.ErrIllegalTransition)
}

func TestOfferSetStatusNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Offers.SetStatus(ctx, 99, "a@x.com", "job1", model.OfferAccepted)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestOfferCancelAllForSkipsDeclined(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	repo.Offers.now = func() int64 { return 100 }
	applied(t, repo, "a@x.com", "job1")

	sent, err := repo.Offers.Create(ctx, "p@x.com", "a@x.com", "job1", 100, "sent")
	require.NoError(t, err)
	accepted, err := repo.Offers.Create(ctx, "p@x.com", "a@x.com", "job1", 200, "accepted")
	require.NoError(t, err)
	declined, err := repo.Offers.Create(ctx, "p@x.com", "a@x.com", "job1", 300, "declined")
	require.NoError(t, err)

	_, err = repo.Offers.SetStatus(ctx, accepted.ID(), "a@x.com", "job1", model.OfferAccepted)
	require.NoError(t, err)
	_, err = repo.Offers.SetStatus(ctx, declined.ID(), "a@x.com", "job1", model.OfferDeclined)
	require.NoError(t, err)

	prior, err := repo.Offers.CancelAllFor(ctx, "p@x.com", "a@x.com", "job1")
	require.NoError(t, err)
	assert.Len(t, prior, 2)

	check := func(id int64, want model.OfferStatus) {
		t.Helper()
		o, err := repo.Offers.Find(ctx, id, "a@x.com", "job1")
		require.NoError(t, err)
		assert.Equal(t, want, o.Status)
	}
	check(sent.ID(), model.OfferCancelled)
	check(accepted.ID(), model.OfferCancelled)
	check(declined.ID(), model.OfferDeclined)
}

func TestOfferListByCandidateAndJob(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	applied(t, repo, "a@x.com", "job1")
	applied(t, repo, "b@x.com", "job1")

	_, err := repo.Offers.Create(ctx, "p@x.com", "a@x.com", "job1", 100, "one")
	require.NoError(t, err)
	_, err = repo.Offers.Create(ctx, "p@x.com", "b@x.com", "job1", 200, "two")
	require.NoError(t, err)

	mine, err := repo.Offers.ListByCandidate(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	forJob, err := repo.Offers.ListByJob(ctx, "job1")
	require.NoError(t, err)
	assert.Len(t, forJob, 2)
}
