package model

import (
	"time"

	"github.com/aster-works/agora/pkg/domain/types"
)

// Member is a registered association member. The ID is the identity
// provider's subject for the member's account.
type Member struct {
	ID         types.UserID `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Department string       `json:"department,omitempty"`
	ClassYear  int          `json:"classYear,omitempty"`
	Verified   bool         `json:"verified"`
	Admin      bool         `json:"admin"`

	// VerifyToken is the outstanding email verification token, cleared
	// once the member verifies.
	VerifyToken string `json:"-" firestore:"VerifyToken"`

	JoinedAt  time.Time `json:"joinedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
