package repository

import (
	"context"
	"time"

	"github.com/longdzai22/KolConnection/internal/common"
	"github.com/longdzai22/KolConnection/internal/store"
	"github.com/longdzai22/KolConnection/pkg/model"
)

// ApplicationRepository persists the application collection. Records are
// prepended on create, so iteration order is newest-applied first.
type ApplicationRepository struct {
	kv  store.Store
	now func() int64
}

func (r *ApplicationRepository) clock() int64 {
	if r.now != nil {
		return r.now()
	}
	return time.Now().UnixMilli()
}

func (r *ApplicationRepository) load(ctx context.Context) ([]model.Application, error) {
	return loadList[model.Application](ctx, r.kv, KeyApplications)
}

func (r *ApplicationRepository) save(ctx context.Context, apps []model.Application) error {
	return saveList(ctx, r.kv, KeyApplications, apps)
}

func matches(a model.Application, candidateEmail, jobID string) bool {
	return a.CandidateEmail == candidateEmail && a.JobID == jobID
}

// FindByCandidateAndJob returns the unique application for the pair, or
// common.ErrNotFound.
func (r *ApplicationRepository) FindByCandidateAndJob(ctx context.Context, candidateEmail, jobID string) (*model.Application, error) {
	apps, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		if matches(apps[i], candidateEmail, jobID) {
			a := apps[i]
			return &a, nil
		}
	}
	return nil, common.ErrNotFound
}

// ListByPoster returns the employer's inbox, newest-applied first.
func (r *ApplicationRepository) ListByPoster(ctx context.Context, posterEmail string) ([]model.Application, error) {
	apps, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Application
	for _, a := range apps {
		if a.PosterEmail == posterEmail {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListByCandidate returns everything the seeker has applied to, newest first.
func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateEmail string) ([]model.Application, error) {
	apps, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Application
	for _, a := range apps {
		if a.CandidateEmail == candidateEmail {
			out = append(out, a)
		}
	}
	return out, nil
}

// Create persists a new application with status applied and an empty log.
// The (candidate, job) pair is reserved for the application's whole lifetime,
// so a rejected application still blocks a re-apply.
func (r *ApplicationRepository) Create(ctx context.Context, app model.Application) (model.Application, error) {
	apps, err := r.load(ctx)
	if err != nil {
		return model.Application{}, err
	}
	for _, a := range apps {
		if matches(a, app.CandidateEmail, app.JobID) {
			return model.Application{}, common.ErrDuplicateApplication
		}
	}
	app.Status = model.StatusApplied
	app.OfferID = 0
	app.Log = []model.LogEntry{}
	app.CreatedAt = r.clock()
	apps = append([]model.Application{app}, apps...)
	if err := r.save(ctx, apps); err != nil {
		return model.Application{}, err
	}
	return app, nil
}

// UpdateStatus sets the status of the unique matching application and
// prepends entry to its log.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, candidateEmail, jobID, posterEmail string, newStatus model.ApplicationStatus, entry model.LogEntry) (model.Application, error) {
	return r.mutate(ctx, candidateEmail, jobID, posterEmail, func(a *model.Application) {
		a.Status = newStatus
		a.Log = append([]model.LogEntry{entry}, a.Log...)
	})
}

// LinkOffer moves the application to offered, records the offer id and
// prepends the offer_sent entry, all in one write.
func (r *ApplicationRepository) LinkOffer(ctx context.Context, candidateEmail, jobID, posterEmail string, offerID int64, entry model.LogEntry) (model.Application, error) {
	return r.mutate(ctx, candidateEmail, jobID, posterEmail, func(a *model.Application) {
		a.Status = model.StatusOffered
		a.OfferID = offerID
		a.Log = append([]model.LogEntry{entry}, a.Log...)
	})
}

func (r *ApplicationRepository) mutate(ctx context.Context, candidateEmail, jobID, posterEmail string, fn func(*model.Application)) (model.Application, error) {
	apps, err := r.load(ctx)
	if err != nil {
		return model.Application{}, err
	}
	for i := range apps {
		if matches(apps[i], candidateEmail, jobID) && apps[i].PosterEmail == posterEmail {
			fn(&apps[i])
			if err := r.save(ctx, apps); err != nil {
				return model.Application{}, err
			}
			return apps[i], nil
		}
	}
	return model.Application{}, common.ErrNotFound
}

// Replace overwrites the stored record sharing the application's natural key.
// The workflow engine uses it to restore a prior snapshot when the second leg
// of a two-record commit fails.
func (r *ApplicationRepository) Replace(ctx context.Context, app model.Application) error {
	apps, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range apps {
		if matches(apps[i], app.CandidateEmail, app.JobID) {
			apps[i] = app
			return r.save(ctx, apps)
		}
	}
	return common.ErrNotFound
}

// Delete removes the matching application. The offer cascade is the workflow
// engine's responsibility.
func (r *ApplicationRepository) Delete(ctx context.Context, candidateEmail, jobID, posterEmail string) error {
	apps, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := apps[:0:0]
	removed := false
	for _, a := range apps {
		if matches(a, candidateEmail, jobID) && a.PosterEmail == posterEmail {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	if !removed {
		return common.ErrNotFound
	}
	return r.save(ctx, kept)
}
