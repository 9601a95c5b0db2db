package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationTransitions(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		ok       bool
	}{
		{StatusApplied, StatusRejected, true},
		{StatusApplied, StatusOffered, true},
		{StatusApplied, StatusOfferedAccepted, false},
		{StatusOffered, StatusRejected, true},
		{StatusOffered, StatusOfferedAccepted, true},
		{StatusOffered, StatusOfferedDeclined, true},
		{StatusOffered, StatusApplied, false},
		{StatusRejected, StatusOffered, false},
		{StatusOfferedAccepted, StatusRejected, false},
		{StatusOfferedDeclined, StatusOffered, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanBecome(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestApplicationTerminal(t *testing.T) {
	assert.False(t, StatusApplied.Terminal())
	assert.False(t, StatusOffered.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusOfferedAccepted.Terminal())
	assert.True(t, StatusOfferedDeclined.Terminal())
}

func TestOfferTransitions(t *testing.T) {
	cases := []struct {
		from, to OfferStatus
		ok       bool
	}{
		{OfferSent, OfferAccepted, true},
		{OfferSent, OfferDeclined, true},
		{OfferSent, OfferCancelled, true},
		{OfferAccepted, OfferCancelled, true},
		{OfferAccepted, OfferDeclined, false},
		{OfferDeclined, OfferCancelled, false},
		{OfferCancelled, OfferSent, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanBecome(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestJobOwnerEmail(t *testing.T) {
	assert.Equal(t, "p@x.com", Job{PosterEmail: "p@x.com"}.OwnerEmail())
	assert.Equal(t, "hr@x.com", Job{Contact: &Contact{Email: "hr@x.com"}}.OwnerEmail())
	assert.Equal(t, "", Job{}.OwnerEmail())
}
