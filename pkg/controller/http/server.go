package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/openarchief/vernietiging/pkg/usecase"
	"github.com/openarchief/vernietiging/pkg/utils/logging"
)

// Server exposes the destruction workflow over a JSON API. Authentication
// happens upstream; the acting user arrives in the X-User-ID header.
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(actorMiddleware)

		r.Route("/lists", func(r chi.Router) {
			r.Get("/", s.handleListLists)
			r.Post("/", s.handleCreateList)

			r.Route("/{listID}", func(r chi.Router) {
				r.Get("/", s.handleGetList)
				r.Post("/reviews", s.handleSubmitReview)
				r.Post("/items", s.handleUpdateList)
				r.Post("/abort", s.handleAbortList)
				r.Post("/process", s.handleProcessList)
				r.Get("/audit", s.handleListAudit)
			})
		})

		r.Post("/reviews/{reviewID}/comments", s.handleRespondToReview)
		r.Get("/notifications", s.handleListNotifications)
		r.Get("/reports", s.handleGetReport)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
