package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/model/auth"
	"github.com/aster-works/agora/pkg/domain/types"
)

func (s *Server) listVisibleEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.uc.Event.ListVisible(r.Context())
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, events)
}

func (s *Server) getEvent(w http.ResponseWriter, r *http.Request) {
	id := types.EventID(chi.URLParam(r, "eventID"))
	ev, err := s.uc.Event.Get(r.Context(), id)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	// Drafts are indistinguishable from missing events to non-admins.
	p := auth.FromContext(r.Context())
	if !ev.Visible && (p == nil || !p.Admin) {
		respondErr(r.Context(), w, goerr.Wrap(interfaces.ErrNotFound, "event not found",
			goerr.V("event_id", id)))
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, ev)
}

func (s *Server) listAllEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.uc.Event.List(r.Context())
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, events)
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	var ev model.Event
	if err := decodeJSON(r, &ev); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	created, err := s.uc.Event.Create(r.Context(), &ev)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) updateEvent(w http.ResponseWriter, r *http.Request) {
	var ev model.Event
	if err := decodeJSON(r, &ev); err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	ev.ID = types.EventID(chi.URLParam(r, "eventID"))

	updated, err := s.uc.Event.Update(r.Context(), &ev)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id := types.EventID(chi.URLParam(r, "eventID"))
	if err := s.uc.Event.Delete(r.Context(), id); err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
