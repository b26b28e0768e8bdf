package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the use case layer. The HTTP controller maps
// these onto status codes.
var (
	// Validation errors (400)
	ErrInvalidInput = goerr.New("invalid input")

	// Eligibility errors (403)
	ErrNotEligible      = goerr.New("not eligible for this event")
	ErrMembersOnly      = goerr.New("event is restricted to verified members")
	ErrEnrollmentClosed = goerr.New("enrollment window is closed")
	ErrEventFull        = goerr.New("event is at capacity")
	ErrEventHidden      = goerr.New("event is not open for enrollment")

	// Verification errors
	ErrVerifyTokenMismatch = goerr.New("verification token does not match")
)

// Context keys for error values
const (
	EventIDKey = "event_id"
	FormIDKey  = "form_id"
	UserIDKey  = "user_id"
	FieldIDKey = "field_id"
)
