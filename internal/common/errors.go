// Package common holds the domain error sentinels shared by the repositories
// and the workflow engine. Callers match them with errors.Is; the messages are
// not part of the contract.
package common

import "errors"

var (
	// ErrDuplicateApplication: an application already exists for the
	// (candidate, job) pair. This includes rejected applications; the pair is
	// reserved for the application's whole lifetime.
	ErrDuplicateApplication = errors.New("application already exists for this candidate and job")

	// ErrNotFound: no record matches the given identifiers.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidOffer: offer price must be positive and the note non-blank.
	ErrInvalidOffer = errors.New("offer requires a positive price and a note")

	// ErrNoApplication: an offer may only target an existing application.
	ErrNoApplication = errors.New("no application backs this offer")

	// ErrIllegalTransition: the record's current status does not permit the
	// requested change.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrDuplicateUser: an account already exists for the email.
	ErrDuplicateUser = errors.New("email already registered")
)
