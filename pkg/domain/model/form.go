package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/types"
)

// FormField is a single typed field within a form definition.
// The ID keys submitted answers and must be unique within the form.
type FormField struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	Type     types.FieldType `json:"type"`
	Required bool            `json:"required"`
	Options  []string        `json:"options,omitempty"`
	Order    int             `json:"order"`
}

// FormDefinition is the schema an administrator authors for an event's
// sign-up form: an ordered list of typed fields.
type FormDefinition struct {
	ID          types.FormID  `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	EventID     types.EventID `json:"eventId,omitempty"`
	Fields      []FormField   `json:"fields"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Validate checks the structural invariants of a form definition.
func (f *FormDefinition) Validate() error {
	if f.Title == "" {
		return goerr.Wrap(ErrMissingTitle, "form title is required")
	}
	if len(f.Fields) == 0 {
		return goerr.Wrap(ErrNoFields, "form must have at least one field")
	}

	seen := make(map[string]bool, len(f.Fields))
	for i, field := range f.Fields {
		if field.ID == "" {
			return goerr.Wrap(ErrInvalidField, "field ID is required", goerr.V(FieldIndexKey, i))
		}
		if seen[field.ID] {
			return goerr.Wrap(ErrDuplicateFieldID, "field IDs must be unique", goerr.V(FieldIDKey, field.ID))
		}
		seen[field.ID] = true

		if !field.Type.IsValid() {
			return goerr.Wrap(ErrInvalidFieldType, "unknown field type",
				goerr.V(FieldIDKey, field.ID), goerr.V(FieldTypeKey, field.Type))
		}
		if field.Type.HasOptions() && len(field.Options) == 0 {
			return goerr.Wrap(ErrMissingOptions, "choice field requires options",
				goerr.V(FieldIDKey, field.ID), goerr.V(FieldTypeKey, field.Type))
		}
		if !field.Type.HasOptions() && len(field.Options) > 0 {
			return goerr.Wrap(ErrInvalidField, "options are only allowed on choice fields",
				goerr.V(FieldIDKey, field.ID), goerr.V(FieldTypeKey, field.Type))
		}
	}

	return nil
}

// Field returns the field with the given ID, or nil.
func (f *FormDefinition) Field(id string) *FormField {
	for i := range f.Fields {
		if f.Fields[i].ID == id {
			return &f.Fields[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the form definition. Responses embed the
// clone as their snapshot so later edits to the live form cannot alter
// submitted history.
func (f *FormDefinition) Clone() FormDefinition {
	cloned := *f
	cloned.Fields = make([]FormField, len(f.Fields))
	for i, field := range f.Fields {
		fc := field
		if field.Options != nil {
			fc.Options = make([]string, len(field.Options))
			copy(fc.Options, field.Options)
		}
		cloned.Fields[i] = fc
	}
	return cloned
}
