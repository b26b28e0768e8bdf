package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/model/auth"
	"github.com/aster-works/agora/pkg/domain/types"
	"github.com/aster-works/agora/pkg/usecase"
)

type submitRequest struct {
	EventID types.EventID `json:"eventId"`
	FormID  types.FormID  `json:"formId"`
	Answers model.Answers `json:"answers"`
}

func (s *Server) submitResponse(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	p := auth.FromContext(r.Context())
	resp, err := s.uc.Response.Submit(r.Context(), p, req.EventID, req.FormID, req.Answers)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, resp)
}

type checkResponse struct {
	Submitted   bool            `json:"submitted"`
	SubmittedAt *string         `json:"submittedAt,omitempty"`
	Response    *model.Response `json:"response,omitempty"`
}

func (s *Server) checkSubmitted(w http.ResponseWriter, r *http.Request) {
	eventID := types.EventID(chi.URLParam(r, "eventID"))
	formID := types.FormID(chi.URLParam(r, "formID"))
	p := auth.FromContext(r.Context())

	resp, err := s.uc.Response.CheckSubmitted(r.Context(), eventID, formID, p.UserID)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	body := checkResponse{Submitted: resp != nil, Response: resp}
	if resp != nil {
		at := resp.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
		body.SubmittedAt = &at
	}
	respondJSON(r.Context(), w, http.StatusOK, body)
}

func (s *Server) listUserResponses(w http.ResponseWriter, r *http.Request) {
	p := auth.FromContext(r.Context())

	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)

	enrollments, err := s.uc.Response.ListByUser(r.Context(), p.UserID, limit, offset)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, enrollments)
}

func (s *Server) listEventResponses(w http.ResponseWriter, r *http.Request) {
	eventID := types.EventID(chi.URLParam(r, "eventID"))

	details, err := s.uc.Response.ListByEvent(r.Context(), eventID)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, details)
}

func (s *Server) listEnrollments(w http.ResponseWriter, r *http.Request) {
	rows, err := s.uc.Response.ListAll(r.Context())
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, rows)
}

type enrollmentPatchRequest struct {
	Review  *reviewRequest  `json:"review,omitempty"`
	Payment *paymentRequest `json:"payment,omitempty"`
}

// patchEnrollment updates review and/or payment metadata in one call.
// An omitted section is left untouched.
func (s *Server) patchEnrollment(w http.ResponseWriter, r *http.Request) {
	var req enrollmentPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	if req.Review == nil && req.Payment == nil {
		respondErr(r.Context(), w, goerr.Wrap(usecase.ErrInvalidInput, "nothing to update"))
		return
	}

	id := types.ResponseID(chi.URLParam(r, "responseID"))
	p := auth.FromContext(r.Context())

	var updated *model.Response
	var err error
	if req.Review != nil {
		updated, err = s.uc.Response.SetReview(r.Context(), id, p.UserID, req.Review.Reviewed, req.Review.Notes)
		if err != nil {
			respondErr(r.Context(), w, err)
			return
		}
	}
	if req.Payment != nil {
		updated, err = s.uc.Response.SetPayment(r.Context(), id,
			types.PaymentStatus(req.Payment.Status), types.PaymentMethod(req.Payment.Method), req.Payment.Notes)
		if err != nil {
			respondErr(r.Context(), w, err)
			return
		}
	}
	respondJSON(r.Context(), w, http.StatusOK, updated)
}

type reviewRequest struct {
	Reviewed bool   `json:"reviewed"`
	Notes    string `json:"notes"`
}

func (s *Server) setReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	id := types.ResponseID(chi.URLParam(r, "responseID"))
	p := auth.FromContext(r.Context())

	updated, err := s.uc.Response.SetReview(r.Context(), id, p.UserID, req.Reviewed, req.Notes)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, updated)
}

type paymentRequest struct {
	Status string `json:"status"`
	Method string `json:"method"`
	Notes  string `json:"notes"`
}

func (s *Server) setPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	id := types.ResponseID(chi.URLParam(r, "responseID"))
	updated, err := s.uc.Response.SetPayment(r.Context(), id,
		types.PaymentStatus(req.Status), types.PaymentMethod(req.Method), req.Notes)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, updated)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
