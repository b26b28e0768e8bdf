package interfaces

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared by all repository backends
var (
	// ErrNotFound is returned when a referenced document does not exist.
	ErrNotFound = goerr.New("not found")

	// ErrAlreadySubmitted is returned by ResponseRepository.Submit when a
	// response for the same (event, form, user) triple already exists. The
	// wrapped error carries the original submission time under
	// SubmittedAtKey.
	ErrAlreadySubmitted = goerr.New("response already submitted")

	// ErrUnavailable is returned when the backing store could not be
	// reached. Identity read paths retry on it; everything else surfaces
	// it as a service-unavailable failure.
	ErrUnavailable = goerr.New("backend unavailable")
)

// SubmittedAtKey is the goerr value key carrying the original submission
// timestamp on ErrAlreadySubmitted.
const SubmittedAtKey = "submitted_at"
