package model

import (
	"time"

	"github.com/aster-works/agora/pkg/domain/types"
)

// Place is a food map entry.
type Place struct {
	ID          types.PlaceID `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Address     string        `json:"address,omitempty"`
	Category    string        `json:"category,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
