package model

// OfferStatus is the lifecycle state of a priced offer.
type OfferStatus string

const (
	OfferSent      OfferStatus = "sent"
	OfferAccepted  OfferStatus = "accepted"
	OfferDeclined  OfferStatus = "declined"
	OfferCancelled OfferStatus = "cancelled"
)

// Terminal reports whether the status admits no further seeker action.
func (s OfferStatus) Terminal() bool {
	return s != OfferSent
}

// CanBecome reports whether the transition s -> next is legal. The
// accepted -> cancelled edge exists only for the delete-application cascade;
// a declined offer is never overwritten.
func (s OfferStatus) CanBecome(next OfferStatus) bool {
	switch s {
	case OfferSent:
		return next == OfferAccepted || next == OfferDeclined || next == OfferCancelled
	case OfferAccepted:
		return next == OfferCancelled
	default:
		return false
	}
}

// Offer is an employer's priced proposal to one applicant for one job.
// CreatedAt (unix milliseconds) doubles as the offer's identifier.
type Offer struct {
	PosterEmail    string      `json:"posterEmail"`
	CandidateEmail string      `json:"candidateEmail"`
	JobID          string      `json:"jobId"`
	Price          float64     `json:"price"`
	Note           string      `json:"note"`
	Status         OfferStatus `json:"status"`
	CreatedAt      int64       `json:"createdAt"`
}

// ID returns the offer identifier.
func (o Offer) ID() int64 {
	return o.CreatedAt
}
