package repository

import (
	"context"

	"github.com/longdzai22/KolConnection/internal/common"
	"github.com/longdzai22/KolConnection/internal/store"
	"github.com/longdzai22/KolConnection/pkg/model"
)

// JobRepository persists locally posted jobs. The static dataset lives outside
// the store and is merged in by the catalog service.
type JobRepository struct {
	kv store.Store
}

func (r *JobRepository) load(ctx context.Context) ([]model.Job, error) {
	return loadList[model.Job](ctx, r.kv, KeyLocalJobs)
}

// ListLocal returns locally posted jobs, newest first.
func (r *JobRepository) ListLocal(ctx context.Context) ([]model.Job, error) {
	return r.load(ctx)
}

// Create prepends a new local posting.
func (r *JobRepository) Create(ctx context.Context, job model.Job) error {
	jobs, err := r.load(ctx)
	if err != nil {
		return err
	}
	jobs = append([]model.Job{job}, jobs...)
	return saveList(ctx, r.kv, KeyLocalJobs, jobs)
}

// Delete removes a local posting owned by posterEmail. Dataset jobs cannot be
// deleted.
func (r *JobRepository) Delete(ctx context.Context, id, posterEmail string) error {
	jobs, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := jobs[:0:0]
	removed := false
	for _, j := range jobs {
		if j.ID == id && j.OwnerEmail() == posterEmail {
			removed = true
			continue
		}
		kept = append(kept, j)
	}
	if !removed {
		return common.ErrNotFound
	}
	return saveList(ctx, r.kv, KeyLocalJobs, kept)
}
