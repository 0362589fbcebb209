package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/swiss-game/swiss/pkg/usecase"
)

// defaultMaxImportSize bounds an uploaded import file
const defaultMaxImportSize = 10 << 20

type Server struct {
	router        *chi.Mux
	uc            *usecase.UseCases
	maxImportSize int64
}

type Options func(*Server)

// WithMaxImportSize limits the size of an import request body
func WithMaxImportSize(size int64) Options {
	return func(s *Server) {
		s.maxImportSize = size
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:        r,
		uc:            uc,
		maxImportSize: defaultMaxImportSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/lookups", s.getLookups)

		r.Route("/rounds", func(r chi.Router) {
			r.Get("/", s.listRounds)
			r.Post("/", s.createRound)

			r.Route("/{roundID}", func(r chi.Router) {
				r.Get("/", s.getRound)
				r.Patch("/", s.updateRound)
				r.Delete("/", s.deleteRound)
				r.Post("/reset", s.resetRound)

				r.Get("/projects", s.roundProjects)
				r.Get("/actions", s.listActions)
				r.Post("/actions", s.submitAction)

				r.Get("/export", s.exportRound)
				r.Post("/import", s.importRound)

				r.Put("/delegates/{delegateID}", s.joinRound)
				r.Post("/delegates/{delegateID}/sent", s.markSent)
			})
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.listProjects)
			r.Post("/", s.createProject)
		})

		r.Route("/delegations", func(r chi.Router) {
			r.Get("/", s.listDelegations)
			r.Post("/", s.createDelegation)
			r.Delete("/{delegationID}", s.deleteDelegation)
		})

		r.Route("/delegates", func(r chi.Router) {
			r.Get("/", s.listDelegates)
			r.Post("/", s.createDelegate)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
