package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

func (s *Server) getForm(w http.ResponseWriter, r *http.Request) {
	id := types.FormID(chi.URLParam(r, "formID"))
	form, err := s.uc.Form.Get(r.Context(), id)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, form)
}

func (s *Server) listForms(w http.ResponseWriter, r *http.Request) {
	forms, err := s.uc.Form.List(r.Context())
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, forms)
}

func (s *Server) createForm(w http.ResponseWriter, r *http.Request) {
	var form model.FormDefinition
	if err := decodeJSON(r, &form); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	created, err := s.uc.Form.Create(r.Context(), &form)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) updateForm(w http.ResponseWriter, r *http.Request) {
	var form model.FormDefinition
	if err := decodeJSON(r, &form); err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	form.ID = types.FormID(chi.URLParam(r, "formID"))

	updated, err := s.uc.Form.Update(r.Context(), &form)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) deleteForm(w http.ResponseWriter, r *http.Request) {
	id := types.FormID(chi.URLParam(r, "formID"))
	if err := s.uc.Form.Delete(r.Context(), id); err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
