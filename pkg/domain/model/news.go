package model

import (
	"time"

	"github.com/aster-works/agora/pkg/domain/types"
)

// News is a published news article.
type News struct {
	ID        types.NewsID `json:"id"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	AuthorID  types.UserID `json:"authorId,omitempty"`
	Published bool         `json:"published"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
