package firestore

import "github.com/aster-works/agora/pkg/domain/interfaces"

// Re-exported repository sentinels so callers that only know this backend
// can still match them.
var (
	ErrNotFound         = interfaces.ErrNotFound
	ErrAlreadySubmitted = interfaces.ErrAlreadySubmitted
)
