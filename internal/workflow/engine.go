// Package workflow is the single authority over the application/offer
// lifecycle. Callers go through the engine rather than writing records
// directly, so every status change passes the transition tables and leaves an
// audit entry.
//
// Application: applied -> rejected | offered; offered -> rejected |
// offered-accepted | offered-declined. Offer: sent -> accepted | declined |
// cancelled; accepted -> cancelled (cascade only). Terminal statuses are never
// left.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/longdzai22/KolConnection/internal/common"
	"github.com/longdzai22/KolConnection/internal/repository"
	"github.com/longdzai22/KolConnection/pkg/model"
)

// Engine composes the two repositories. Operations touching both records
// validate everything up front, write the offer side first and roll it back
// if the application write fails, so a caller never observes the pair out of
// sync.
type Engine struct {
	apps   *repository.ApplicationRepository
	offers *repository.OfferRepository
	now    func() int64
}

func NewEngine(repo *repository.Repository) *Engine {
	return &Engine{apps: repo.Applications, offers: repo.Offers}
}

func (e *Engine) clock() int64 {
	if e.now != nil {
		return e.now()
	}
	return time.Now().UnixMilli()
}

// ApplyInput carries the snapshot taken from the job catalog and the seeker's
// profile at apply time. The CV and PDF are frozen into the application and
// never updated afterwards.
type ApplyInput struct {
	CandidateEmail string
	JobID          string
	JobTitle       string
	PosterEmail    string
	CandidateName  string
	CV             *model.CV
	CVPDF          string
}

// Apply creates the application. A second apply for the same (candidate, job)
// pair fails with ErrDuplicateApplication, even after a rejection.
func (e *Engine) Apply(ctx context.Context, in ApplyInput) (model.Application, error) {
	if in.CandidateEmail == "" || in.JobID == "" {
		return model.Application{}, fmt.Errorf("apply: candidate email and job id are required")
	}
	return e.apps.Create(ctx, model.Application{
		JobID:          in.JobID,
		JobTitle:       in.JobTitle,
		PosterEmail:    in.PosterEmail,
		CandidateEmail: in.CandidateEmail,
		CandidateName:  in.CandidateName,
		CandidateCV:    in.CV,
		CVPDF:          in.CVPDF,
	})
}

// Reject marks the application rejected. Legal from applied or offered only.
func (e *Engine) Reject(ctx context.Context, posterEmail, candidateEmail, jobID string) (model.Application, error) {
	app, err := e.apps.FindByCandidateAndJob(ctx, candidateEmail, jobID)
	if err != nil {
		return model.Application{}, err
	}
	if app.PosterEmail != posterEmail {
		return model.Application{}, common.ErrNotFound
	}
	if !app.Status.CanBecome(model.StatusRejected) {
		return model.Application{}, common.ErrIllegalTransition
	}
	return e.apps.UpdateStatus(ctx, candidateEmail, jobID, posterEmail, model.StatusRejected, model.LogEntry{
		TS:     e.clock(),
		By:     posterEmail,
		Action: model.ActionApplicationRejected,
		Note:   "application rejected by the employer",
	})
}

// SendOffer creates the offer, moves the application to offered and links the
// two. The application must not be in a terminal state.
func (e *Engine) SendOffer(ctx context.Context, posterEmail, candidateEmail, jobID string, price float64, note string) (model.Offer, error) {
	if price <= 0 || strings.TrimSpace(note) == "" {
		return model.Offer{}, common.ErrInvalidOffer
	}
	app, err := e.apps.FindByCandidateAndJob(ctx, candidateEmail, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return model.Offer{}, common.ErrNoApplication
		}
		return model.Offer{}, err
	}
	if app.PosterEmail != posterEmail {
		return model.Offer{}, common.ErrNoApplication
	}
	if app.Status.Terminal() {
		return model.Offer{}, common.ErrIllegalTransition
	}
	offer, err := e.offers.Create(ctx, posterEmail, candidateEmail, jobID, price, note)
	if err != nil {
		return model.Offer{}, err
	}
	_, err = e.apps.LinkOffer(ctx, candidateEmail, jobID, posterEmail, offer.ID(), model.LogEntry{
		TS:      e.clock(),
		By:      posterEmail,
		Action:  model.ActionOfferSent,
		OfferID: offer.ID(),
		Note:    offer.Note,
		Price:   offer.Price,
	})
	if err != nil {
		if rbErr := e.offers.Discard(ctx, offer.ID(), candidateEmail, jobID); rbErr != nil {
			return model.Offer{}, fmt.Errorf("link offer: %w (rollback failed: %v)", err, rbErr)
		}
		return model.Offer{}, fmt.Errorf("link offer: %w", err)
	}
	return offer, nil
}

// AcceptOffer records the seeker's acceptance on both records.
func (e *Engine) AcceptOffer(ctx context.Context, candidateEmail string, offerID int64, jobID string) (model.Offer, error) {
	return e.settleOffer(ctx, candidateEmail, offerID, jobID,
		model.OfferAccepted, model.StatusOfferedAccepted, model.ActionOfferAccepted)
}

// DeclineOffer records the seeker's refusal on both records.
func (e *Engine) DeclineOffer(ctx context.Context, candidateEmail string, offerID int64, jobID string) (model.Offer, error) {
	return e.settleOffer(ctx, candidateEmail, offerID, jobID,
		model.OfferDeclined, model.StatusOfferedDeclined, model.ActionOfferDeclined)
}

func (e *Engine) settleOffer(ctx context.Context, candidateEmail string, offerID int64, jobID string, offerStatus model.OfferStatus, appStatus model.ApplicationStatus, action model.LogAction) (model.Offer, error) {
	offer, err := e.offers.Find(ctx, offerID, candidateEmail, jobID)
	if err != nil {
		return model.Offer{}, err
	}
	if offer.Status != model.OfferSent {
		return model.Offer{}, common.ErrIllegalTransition
	}
	app, err := e.apps.FindByCandidateAndJob(ctx, candidateEmail, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return model.Offer{}, common.ErrNoApplication
		}
		return model.Offer{}, err
	}
	// The application may carry the id of a different offer when the employer
	// sent several; the seeker's explicit choice settles the negotiation.
	if app.PosterEmail != offer.PosterEmail || !app.Status.CanBecome(appStatus) {
		return model.Offer{}, common.ErrIllegalTransition
	}
	prior := *offer
	updated, err := e.offers.SetStatus(ctx, offerID, candidateEmail, jobID, offerStatus)
	if err != nil {
		return model.Offer{}, err
	}
	_, err = e.apps.UpdateStatus(ctx, candidateEmail, jobID, app.PosterEmail, appStatus, model.LogEntry{
		TS:      e.clock(),
		By:      candidateEmail,
		Action:  action,
		OfferID: offerID,
	})
	if err != nil {
		if rbErr := e.offers.Replace(ctx, prior); rbErr != nil {
			return model.Offer{}, fmt.Errorf("update application: %w (rollback failed: %v)", err, rbErr)
		}
		return model.Offer{}, fmt.Errorf("update application: %w", err)
	}
	return updated, nil
}

// DeleteApplication removes the application and cancels every sent or
// accepted offer for its triple. Declined offers are left as they are.
func (e *Engine) DeleteApplication(ctx context.Context, posterEmail, candidateEmail, jobID string) error {
	app, err := e.apps.FindByCandidateAndJob(ctx, candidateEmail, jobID)
	if err != nil {
		return err
	}
	if app.PosterEmail != posterEmail {
		return common.ErrNotFound
	}
	prior, err := e.offers.CancelAllFor(ctx, posterEmail, candidateEmail, jobID)
	if err != nil {
		return err
	}
	if err := e.apps.Delete(ctx, candidateEmail, jobID, posterEmail); err != nil {
		for _, o := range prior {
			if rbErr := e.offers.Replace(ctx, o); rbErr != nil {
				return fmt.Errorf("delete application: %w (rollback failed: %v)", err, rbErr)
			}
		}
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}
