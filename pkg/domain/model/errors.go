package model

import "github.com/m-mizutani/goerr/v2"

// Validation errors
var (
	ErrMissingTitle     = goerr.New("title is required")
	ErrNoFields         = goerr.New("form has no fields")
	ErrInvalidField     = goerr.New("invalid field")
	ErrDuplicateFieldID = goerr.New("duplicate field ID")
	ErrInvalidFieldType = goerr.New("invalid field type")
	ErrMissingOptions   = goerr.New("choice field requires at least one option")
	ErrMissingRequired  = goerr.New("required field is missing")
	ErrInvalidOption    = goerr.New("answer is not one of the field's options")
	ErrAnswerShape      = goerr.New("answer shape does not match field type")
	ErrUnknownField     = goerr.New("answer references an unknown field")
)

// Context keys for error values
const (
	FieldIDKey    = "field_id"
	FieldTypeKey  = "field_type"
	FieldIndexKey = "field_index"
	OptionKey     = "option"
)
