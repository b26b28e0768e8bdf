package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/service/authn"
	"github.com/aster-works/agora/pkg/usecase"
	"github.com/aster-works/agora/pkg/utils/errutil"
	"github.com/aster-works/agora/pkg/utils/safe"
)

// validationErrs are mapped to 400. Both the model sentinels raised by
// answer/form validation and the use case input sentinel count.
var validationErrs = []error{
	usecase.ErrInvalidInput,
	model.ErrMissingTitle,
	model.ErrNoFields,
	model.ErrInvalidField,
	model.ErrDuplicateFieldID,
	model.ErrInvalidFieldType,
	model.ErrMissingOptions,
	model.ErrMissingRequired,
	model.ErrInvalidOption,
	model.ErrAnswerShape,
	model.ErrUnknownField,
}

var forbiddenErrs = []error{
	usecase.ErrNotEligible,
	usecase.ErrMembersOnly,
	usecase.ErrEnrollmentClosed,
	usecase.ErrEventFull,
	usecase.ErrEventHidden,
	usecase.ErrVerifyTokenMismatch,
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, interfaces.ErrAlreadySubmitted):
		return http.StatusConflict
	case errors.Is(err, authn.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, authn.ErrUpstreamUnavailable), errors.Is(err, interfaces.ErrUnavailable):
		return http.StatusServiceUnavailable
	}

	for _, sentinel := range validationErrs {
		if errors.Is(err, sentinel) {
			return http.StatusBadRequest
		}
	}
	for _, sentinel := range forbiddenErrs {
		if errors.Is(err, sentinel) {
			return http.StatusForbidden
		}
	}

	return http.StatusInternalServerError
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

type errBody struct {
	Error       string     `json:"error"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

// respondErr maps a domain error to a status code and a JSON body. A
// duplicate submission additionally reports when the original response
// was accepted.
func respondErr(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		errutil.HandleHTTP(ctx, w, err, status)
		return
	}

	body := errBody{Error: err.Error()}
	if status == http.StatusConflict {
		var ge *goerr.Error
		if errors.As(err, &ge) {
			if at, ok := ge.Values()[interfaces.SubmittedAtKey].(time.Time); ok {
				body.SubmittedAt = &at
			}
		}
	}

	errutil.Log(ctx, err, "request failed")
	respondJSON(ctx, w, status, body)
}
