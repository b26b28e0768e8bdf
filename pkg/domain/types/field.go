package types

// FieldType represents the type of a form field
type FieldType string

const (
	FieldTypeShortText  FieldType = "short-text"
	FieldTypeLongText   FieldType = "long-text"
	FieldTypeRadio      FieldType = "single-choice"
	FieldTypeCheckbox   FieldType = "multi-choice"
	FieldTypeDropdown   FieldType = "dropdown-choice"
	FieldTypeDate       FieldType = "date"
	FieldTypeFile       FieldType = "file"
	FieldTypeStaticText FieldType = "static-text-block"
)

// AllFieldTypes returns all valid field types
func AllFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeShortText,
		FieldTypeLongText,
		FieldTypeRadio,
		FieldTypeCheckbox,
		FieldTypeDropdown,
		FieldTypeDate,
		FieldTypeFile,
		FieldTypeStaticText,
	}
}

// IsValid checks if the field type is valid
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeShortText,
		FieldTypeLongText,
		FieldTypeRadio,
		FieldTypeCheckbox,
		FieldTypeDropdown,
		FieldTypeDate,
		FieldTypeFile,
		FieldTypeStaticText:
		return true
	default:
		return false
	}
}

// HasOptions reports whether the field type carries an options list
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldTypeRadio, FieldTypeCheckbox, FieldTypeDropdown:
		return true
	default:
		return false
	}
}

// IsMulti reports whether answers for the field type are ordered lists
// rather than scalars
func (t FieldType) IsMulti() bool {
	return t == FieldTypeCheckbox
}

// Answerable reports whether the field accepts an answer at all.
// Static text blocks are render-only.
func (t FieldType) Answerable() bool {
	return t != FieldTypeStaticText
}

// String returns the string representation of the field type
func (t FieldType) String() string {
	return string(t)
}
