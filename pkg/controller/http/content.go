package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

func (s *Server) listPublishedNews(w http.ResponseWriter, r *http.Request) {
	news, err := s.uc.News.ListPublished(r.Context())
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, news)
}

func (s *Server) listAllNews(w http.ResponseWriter, r *http.Request) {
	news, err := s.uc.News.List(r.Context())
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, news)
}

func (s *Server) getNews(w http.ResponseWriter, r *http.Request) {
	id := types.NewsID(chi.URLParam(r, "newsID"))
	n, err := s.uc.News.Get(r.Context(), id)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, n)
}

func (s *Server) createNews(w http.ResponseWriter, r *http.Request) {
	var n model.News
	if err := decodeJSON(r, &n); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	created, err := s.uc.News.Create(r.Context(), &n)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) updateNews(w http.ResponseWriter, r *http.Request) {
	var n model.News
	if err := decodeJSON(r, &n); err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	n.ID = types.NewsID(chi.URLParam(r, "newsID"))

	updated, err := s.uc.News.Update(r.Context(), &n)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) deleteNews(w http.ResponseWriter, r *http.Request) {
	id := types.NewsID(chi.URLParam(r, "newsID"))
	if err := s.uc.News.Delete(r.Context(), id); err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := s.uc.Place.List(r.Context())
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, places)
}

func (s *Server) getPlace(w http.ResponseWriter, r *http.Request) {
	id := types.PlaceID(chi.URLParam(r, "placeID"))
	p, err := s.uc.Place.Get(r.Context(), id)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, p)
}

func (s *Server) createPlace(w http.ResponseWriter, r *http.Request) {
	var p model.Place
	if err := decodeJSON(r, &p); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	created, err := s.uc.Place.Create(r.Context(), &p)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) updatePlace(w http.ResponseWriter, r *http.Request) {
	var p model.Place
	if err := decodeJSON(r, &p); err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	p.ID = types.PlaceID(chi.URLParam(r, "placeID"))

	updated, err := s.uc.Place.Update(r.Context(), &p)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) deletePlace(w http.ResponseWriter, r *http.Request) {
	id := types.PlaceID(chi.URLParam(r, "placeID"))
	if err := s.uc.Place.Delete(r.Context(), id); err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.uc.Record.List(r.Context())
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, records)
}

func (s *Server) getRecord(w http.ResponseWriter, r *http.Request) {
	id := types.RecordID(chi.URLParam(r, "recordID"))
	rec, err := s.uc.Record.Get(r.Context(), id)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, rec)
}

func (s *Server) createRecord(w http.ResponseWriter, r *http.Request) {
	var rec model.Record
	if err := decodeJSON(r, &rec); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	created, err := s.uc.Record.Create(r.Context(), &rec)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) updateRecord(w http.ResponseWriter, r *http.Request) {
	var rec model.Record
	if err := decodeJSON(r, &rec); err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	rec.ID = types.RecordID(chi.URLParam(r, "recordID"))

	updated, err := s.uc.Record.Update(r.Context(), &rec)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) deleteRecord(w http.ResponseWriter, r *http.Request) {
	id := types.RecordID(chi.URLParam(r, "recordID"))
	if err := s.uc.Record.Delete(r.Context(), id); err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
