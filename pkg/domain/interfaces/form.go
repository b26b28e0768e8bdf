package interfaces

import (
	"context"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

// FormRepository defines the interface for FormDefinition data access
type FormRepository interface {
	// Create persists a new form definition with a generated ID
	Create(ctx context.Context, form *model.FormDefinition) (*model.FormDefinition, error)

	// Get retrieves a form definition by ID
	Get(ctx context.Context, id types.FormID) (*model.FormDefinition, error)

	// List retrieves all form definitions
	List(ctx context.Context) ([]*model.FormDefinition, error)

	// Update replaces an existing form definition. Previously submitted
	// responses keep their own snapshot and are unaffected.
	Update(ctx context.Context, form *model.FormDefinition) (*model.FormDefinition, error)

	// Delete removes a form definition. Responses are never cascaded.
	Delete(ctx context.Context, id types.FormID) error
}
