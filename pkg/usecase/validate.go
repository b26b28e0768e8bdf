package usecase

import (
	"time"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// fieldValidator checks a single answer against its field definition.
type fieldValidator func(field *model.FormField, ans model.AnswerValue) error

// fieldValidators dispatches validation by field type. Adding a field
// type without an entry here is a programming error caught by
// validateAnswers.
var fieldValidators = map[types.FieldType]fieldValidator{
	types.FieldTypeShortText: validateText,
	types.FieldTypeLongText:  validateText,
	types.FieldTypeRadio:     validateChoice,
	types.FieldTypeDropdown:  validateChoice,
	types.FieldTypeCheckbox:  validateMultiChoice,
	types.FieldTypeDate:      validateDate,
	types.FieldTypeFile:      validateText,
}

// validateAnswers checks a full answer set against a form definition:
// required fields answered, no unknown fields, every value shaped and
// constrained per its field type.
func validateAnswers(form *model.FormDefinition, answers model.Answers) error {
	for i := range form.Fields {
		field := &form.Fields[i]
		if !field.Type.Answerable() {
			continue
		}

		ans, ok := answers[field.ID]
		if !ok || ans.IsEmpty() {
			if field.Required {
				return goerr.Wrap(model.ErrMissingRequired, "required field not answered",
					goerr.V(model.FieldIDKey, field.ID))
			}
			continue
		}
	}

	for fieldID, ans := range answers {
		field := form.Field(fieldID)
		if field == nil {
			return goerr.Wrap(model.ErrUnknownField, "answer references unknown field",
				goerr.V(model.FieldIDKey, fieldID))
		}
		if !field.Type.Answerable() {
			return goerr.Wrap(model.ErrAnswerShape, "field does not accept answers",
				goerr.V(model.FieldIDKey, fieldID),
				goerr.V(model.FieldTypeKey, field.Type))
		}
		if ans.IsEmpty() {
			continue
		}

		validate, ok := fieldValidators[field.Type]
		if !ok {
			return goerr.Wrap(model.ErrInvalidFieldType, "no validator for field type",
				goerr.V(model.FieldTypeKey, field.Type))
		}
		if err := validate(field, ans); err != nil {
			return err
		}
	}

	return nil
}

func validateText(field *model.FormField, ans model.AnswerValue) error {
	if ans.IsList() {
		return goerr.Wrap(model.ErrAnswerShape, "expected a single value",
			goerr.V(model.FieldIDKey, field.ID))
	}
	return nil
}

func validateChoice(field *model.FormField, ans model.AnswerValue) error {
	if ans.IsList() {
		return goerr.Wrap(model.ErrAnswerShape, "expected a single choice",
			goerr.V(model.FieldIDKey, field.ID))
	}
	if !containsOption(field.Options, ans.Text) {
		return goerr.Wrap(model.ErrInvalidOption, "answer is not an offered option",
			goerr.V(model.FieldIDKey, field.ID),
			goerr.V(model.OptionKey, ans.Text))
	}
	return nil
}

func validateMultiChoice(field *model.FormField, ans model.AnswerValue) error {
	if !ans.IsList() {
		return goerr.Wrap(model.ErrAnswerShape, "expected a list of choices",
			goerr.V(model.FieldIDKey, field.ID))
	}
	// Repeated selections are stored as submitted, not deduplicated.
	for _, v := range ans.List {
		if !containsOption(field.Options, v) {
			return goerr.Wrap(model.ErrInvalidOption, "answer is not an offered option",
				goerr.V(model.FieldIDKey, field.ID),
				goerr.V(model.OptionKey, v))
		}
	}
	return nil
}

func validateDate(field *model.FormField, ans model.AnswerValue) error {
	if ans.IsList() {
		return goerr.Wrap(model.ErrAnswerShape, "expected a single date",
			goerr.V(model.FieldIDKey, field.ID))
	}
	if _, err := time.Parse("2006-01-02", ans.Text); err != nil {
		return goerr.Wrap(model.ErrAnswerShape, "date must be YYYY-MM-DD",
			goerr.V(model.FieldIDKey, field.ID),
			goerr.V(model.OptionKey, ans.Text))
	}
	return nil
}

func containsOption(options []string, v string) bool {
	for _, opt := range options {
		if opt == v {
			return true
		}
	}
	return false
}
