package model

import (
	"time"

	"github.com/aster-works/agora/pkg/domain/types"
)

// Record is an archived conference record.
type Record struct {
	ID        types.RecordID `json:"id"`
	Title     string         `json:"title"`
	Body      string         `json:"body,omitempty"`
	HeldAt    time.Time      `json:"heldAt"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
