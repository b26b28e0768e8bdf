package memory

import "github.com/aster-works/agora/pkg/domain/interfaces"

var (
	ErrNotFound         = interfaces.ErrNotFound
	ErrAlreadySubmitted = interfaces.ErrAlreadySubmitted
)
