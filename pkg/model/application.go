package model

// ApplicationStatus is the lifecycle state of a job application.
type ApplicationStatus string

const (
	StatusApplied         ApplicationStatus = "applied"
	StatusRejected        ApplicationStatus = "rejected"
	StatusOffered         ApplicationStatus = "offered"
	StatusOfferedAccepted ApplicationStatus = "offered-accepted"
	StatusOfferedDeclined ApplicationStatus = "offered-declined"
)

// Terminal reports whether no further transition may leave this status.
func (s ApplicationStatus) Terminal() bool {
	switch s {
	case StatusRejected, StatusOfferedAccepted, StatusOfferedDeclined:
		return true
	default:
		return false
	}
}

// CanBecome reports whether the transition s -> next is legal.
func (s ApplicationStatus) CanBecome(next ApplicationStatus) bool {
	switch s {
	case StatusApplied:
		return next == StatusRejected || next == StatusOffered
	case StatusOffered:
		return next == StatusRejected || next == StatusOfferedAccepted || next == StatusOfferedDeclined
	default:
		return false
	}
}

// LogAction identifies a status-changing action recorded in an application's log.
type LogAction string

const (
	ActionApplicationRejected LogAction = "application_rejected"
	ActionOfferSent           LogAction = "offer_sent"
	ActionOfferAccepted       LogAction = "offer_accepted"
	ActionOfferDeclined       LogAction = "offer_declined"
	ActionOfferCancelled      LogAction = "offer_cancelled"
)

// LogEntry is an immutable audit record. Entries are only ever prepended to an
// application's log, so index 0 is always the most recent action.
type LogEntry struct {
	TS      int64     `json:"ts"`
	By      string    `json:"by"`
	Action  LogAction `json:"action"`
	OfferID int64     `json:"offerId,omitempty"`
	Note    string    `json:"note,omitempty"`
	Price   float64   `json:"price,omitempty"`
}

// CV is the structured résumé a seeker maintains. A copy is frozen into the
// application at apply time and never updated afterwards.
type CV struct {
	FullName   string `json:"fullName"`
	Position   string `json:"position"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
}

// Application is one seeker's submission to one job posting. The pair
// (CandidateEmail, JobID) is its natural key: at most one application may
// exist per pair.
type Application struct {
	JobID          string            `json:"jobId"`
	JobTitle       string            `json:"jobTitle"`
	PosterEmail    string            `json:"posterEmail"`
	CandidateEmail string            `json:"candidateEmail"`
	CandidateName  string            `json:"candidateName"`
	CandidateCV    *CV               `json:"candidateCv,omitempty"`
	CVPDF          string            `json:"cvPdf,omitempty"`
	Status         ApplicationStatus `json:"status"`
	OfferID        int64             `json:"offerId,omitempty"`
	Log            []LogEntry        `json:"log"`
	CreatedAt      int64             `json:"createdAt"`
}
