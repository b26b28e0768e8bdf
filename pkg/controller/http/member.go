package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aster-works/agora/pkg/domain/model/auth"
	"github.com/aster-works/agora/pkg/domain/types"
	"github.com/aster-works/agora/pkg/usecase"
)

func (s *Server) registerMember(w http.ResponseWriter, r *http.Request) {
	var in usecase.RegisterInput
	if err := decodeJSON(r, &in); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	p := auth.FromContext(r.Context())
	m, err := s.uc.Member.Register(r.Context(), p, &in)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, m)
}

type verifyRequest struct {
	Token string `json:"token"`
}

func (s *Server) verifyMember(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	p := auth.FromContext(r.Context())
	m, err := s.uc.Member.Verify(r.Context(), p.UserID, req.Token)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, m)
}

func (s *Server) getMyProfile(w http.ResponseWriter, r *http.Request) {
	p := auth.FromContext(r.Context())
	m, err := s.uc.Member.Get(r.Context(), p.UserID)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, m)
}

func (s *Server) listMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.uc.Member.List(r.Context())
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, members)
}

func (s *Server) deleteMember(w http.ResponseWriter, r *http.Request) {
	id := types.UserID(chi.URLParam(r, "userID"))
	if err := s.uc.Member.Delete(r.Context(), id); err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
