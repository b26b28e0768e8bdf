package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aster-works/agora/pkg/service/authn"
	"github.com/aster-works/agora/pkg/usecase"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
	authn  authn.Service
}

type Options func(*Server)

func WithAuthn(svc authn.Service) Options {
	return func(s *Server) {
		s.authn = svc
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	r.Use(principalMiddleware(s.authn))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK")) //nolint:errcheck // header already committed
	})

	r.Route("/api", func(r chi.Router) {
		// Public catalog
		r.Get("/events", s.listVisibleEvents)
		r.Get("/events/{eventID}", s.getEvent)
		r.Get("/forms/{formID}", s.getForm)
		r.Get("/news", s.listPublishedNews)
		r.Get("/news/{newsID}", s.getNews)
		r.Get("/places", s.listPlaces)
		r.Get("/places/{placeID}", s.getPlace)
		r.Get("/records", s.listRecords)
		r.Get("/records/{recordID}", s.getRecord)

		// Responses: submit is open so unrestricted events accept
		// anonymous answers; the check and history need identity.
		r.Post("/responses", s.submitResponse)
		r.With(requireAuth).Get("/responses/check/{eventID}/{formID}", s.checkSubmitted)
		r.With(requireAuth).Get("/responses/user", s.listUserResponses)

		// Membership
		r.With(requireAuth).Post("/members", s.registerMember)
		r.With(requireAuth).Post("/members/verify", s.verifyMember)
		r.With(requireAuth).Get("/members/me", s.getMyProfile)

		// Administration
		r.Route("/admin", func(r chi.Router) {
			r.Use(adminOnly)

			r.Get("/events", s.listAllEvents)
			r.Post("/events", s.createEvent)
			r.Put("/events/{eventID}", s.updateEvent)
			r.Delete("/events/{eventID}", s.deleteEvent)
			r.Get("/events/{eventID}/responses", s.listEventResponses)

			r.Get("/forms", s.listForms)
			r.Post("/forms", s.createForm)
			r.Put("/forms/{formID}", s.updateForm)
			r.Delete("/forms/{formID}", s.deleteForm)

			r.Get("/enrollments", s.listEnrollments)
			r.Patch("/enrollments/{responseID}", s.patchEnrollment)

			r.Put("/responses/{responseID}/review", s.setReview)
			r.Put("/responses/{responseID}/payment", s.setPayment)

			r.Get("/members", s.listMembers)
			r.Delete("/members/{userID}", s.deleteMember)

			r.Get("/news", s.listAllNews)
			r.Post("/news", s.createNews)
			r.Put("/news/{newsID}", s.updateNews)
			r.Delete("/news/{newsID}", s.deleteNews)

			r.Post("/places", s.createPlace)
			r.Put("/places/{placeID}", s.updatePlace)
			r.Delete("/places/{placeID}", s.deletePlace)

			r.Post("/records", s.createRecord)
			r.Put("/records/{recordID}", s.updateRecord)
			r.Delete("/records/{recordID}", s.deleteRecord)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
