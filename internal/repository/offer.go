package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/longdzai22/KolConnection/internal/common"
	"github.com/longdzai22/KolConnection/internal/store"
	"github.com/longdzai22/KolConnection/pkg/model"
)

// OfferRepository persists the offer collection. Offers are never physically
// deleted by a workflow operation; a cascade turns them into cancelled.
type OfferRepository struct {
	kv   store.Store
	apps *ApplicationRepository
	now  func() int64
}

func (r *OfferRepository) clock() int64 {
	if r.now != nil {
		return r.now()
	}
	return time.Now().UnixMilli()
}

func (r *OfferRepository) load(ctx context.Context) ([]model.Offer, error) {
	return loadList[model.Offer](ctx, r.kv, KeyOffers)
}

func (r *OfferRepository) save(ctx context.Context, offers []model.Offer) error {
	return saveList(ctx, r.kv, KeyOffers, offers)
}

// ListByCandidate returns the seeker's offers, newest first.
func (r *OfferRepository) ListByCandidate(ctx context.Context, candidateEmail string) ([]model.Offer, error) {
	offers, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Offer
	for _, o := range offers {
		if o.CandidateEmail == candidateEmail {
			out = append(out, o)
		}
	}
	return out, nil
}

// ListByJob returns every offer made for one posting, newest first.
func (r *OfferRepository) ListByJob(ctx context.Context, jobID string) ([]model.Offer, error) {
	offers, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Offer
	for _, o := range offers {
		if o.JobID == jobID {
			out = append(out, o)
		}
	}
	return out, nil
}

// Find resolves an offer by explicit id plus candidate and job, never by
// collection position.
func (r *OfferRepository) Find(ctx context.Context, id int64, candidateEmail, jobID string) (*model.Offer, error) {
	offers, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range offers {
		if offers[i].CreatedAt == id && offers[i].CandidateEmail == candidateEmail && offers[i].JobID == jobID {
			o := offers[i]
			return &o, nil
		}
	}
	return nil, common.ErrNotFound
}

// Create validates and persists a new offer with status sent. The creation
// timestamp is the offer's identifier; on a same-millisecond collision it is
// bumped until unique.
func (r *OfferRepository) Create(ctx context.Context, posterEmail, candidateEmail, jobID string, price float64, note string) (model.Offer, error) {
	if price <= 0 || strings.TrimSpace(note) == "" {
		return model.Offer{}, common.ErrInvalidOffer
	}
	if _, err := r.apps.FindByCandidateAndJob(ctx, candidateEmail, jobID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return model.Offer{}, common.ErrNoApplication
		}
		return model.Offer{}, err
	}
	offers, err := r.load(ctx)
	if err != nil {
		return model.Offer{}, err
	}
	id := r.clock()
	for taken(offers, id) {
		id++
	}
	offer := model.Offer{
		PosterEmail:    posterEmail,
		CandidateEmail: candidateEmail,
		JobID:          jobID,
		Price:          price,
		Note:           strings.TrimSpace(note),
		Status:         model.OfferSent,
		CreatedAt:      id,
	}
	offers = append([]model.Offer{offer}, offers...)
	if err := r.save(ctx, offers); err != nil {
		return model.Offer{}, err
	}
	return offer, nil
}

func taken(offers []model.Offer, id int64) bool {
	for _, o := range offers {
		if o.CreatedAt == id {
			return true
		}
	}
	return false
}

// SetStatus moves the offer to newStatus. Re-applying the current status is a
// no-op; any other move must be legal for the current status.
func (r *OfferRepository) SetStatus(ctx context.Context, id int64, candidateEmail, jobID string, newStatus model.OfferStatus) (model.Offer, error) {
	offers, err := r.load(ctx)
	if err != nil {
		return model.Offer{}, err
	}
	for i := range offers {
		o := &offers[i]
		if o.CreatedAt != id || o.CandidateEmail != candidateEmail || o.JobID != jobID {
			continue
		}
		if o.Status == newStatus {
			return *o, nil
		}
		if !o.Status.CanBecome(newStatus) {
			return model.Offer{}, common.ErrIllegalTransition
		}
		o.Status = newStatus
		if err := r.save(ctx, offers); err != nil {
			return model.Offer{}, err
		}
		return *o, nil
	}
	return model.Offer{}, common.ErrNotFound
}

// CancelAllFor cancels every sent or accepted offer for the triple and returns
// the prior state of each changed offer, newest first, so a failed cascade can
// be rolled back. Declined offers are left untouched.
func (r *OfferRepository) CancelAllFor(ctx context.Context, posterEmail, candidateEmail, jobID string) ([]model.Offer, error) {
	offers, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var prior []model.Offer
	for i := range offers {
		o := &offers[i]
		if o.PosterEmail != posterEmail || o.CandidateEmail != candidateEmail || o.JobID != jobID {
			continue
		}
		if o.Status == model.OfferSent || o.Status == model.OfferAccepted {
			prior = append(prior, *o)
			o.Status = model.OfferCancelled
		}
	}
	if len(prior) == 0 {
		return nil, nil
	}
	if err := r.save(ctx, offers); err != nil {
		return nil, err
	}
	return prior, nil
}

// Replace overwrites the stored offer with the same id. Used by the workflow
// engine to undo the first leg of a failed two-record commit.
func (r *OfferRepository) Replace(ctx context.Context, offer model.Offer) error {
	offers, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range offers {
		if offers[i].CreatedAt == offer.CreatedAt && offers[i].CandidateEmail == offer.CandidateEmail && offers[i].JobID == offer.JobID {
			offers[i] = offer
			return r.save(ctx, offers)
		}
	}
	return common.ErrNotFound
}

// Discard removes an offer that was never observed by the seeker. It exists
// only to roll back a send whose application update failed; workflow
// operations themselves never delete offers.
func (r *OfferRepository) Discard(ctx context.Context, id int64, candidateEmail, jobID string) error {
	offers, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := offers[:0:0]
	for _, o := range offers {
		if o.CreatedAt == id && o.CandidateEmail == candidateEmail && o.JobID == jobID {
			continue
		}
		kept = append(kept, o)
	}
	return r.save(ctx, kept)
}
