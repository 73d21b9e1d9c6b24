package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	slack_controller "github.com/m-mizutani/tsumugi/pkg/controller/slack"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/slack"
	"github.com/m-mizutani/tsumugi/pkg/utils/safe"
)

// NotionCallbackPath is the OAuth redirect path registered with Notion
const NotionCallbackPath = "/api/oauth/notion/callback"

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	slackCtrl      *slack_controller.Controller
	slackVerifier  slack.PayloadVerifier
	oauth          interfaces.OAuthUseCases
	metricsHandler http.Handler
}

// Options is a functional option for Server
type Options func(*Server)

// WithSlackController sets the Slack controller
func WithSlackController(ctrl *slack_controller.Controller) Options {
	return func(s *Server) {
		s.slackCtrl = ctrl
	}
}

// WithSlackVerifier sets the Slack payload verifier
func WithSlackVerifier(verifier slack.PayloadVerifier) Options {
	return func(s *Server) {
		s.slackVerifier = verifier
	}
}

// WithOAuthUseCases enables the Notion OAuth callback
func WithOAuthUseCases(uc interfaces.OAuthUseCases) Options {
	return func(s *Server) {
		s.oauth = uc
	}
}

// WithMetricsHandler exposes h at /metrics
func WithMetricsHandler(h http.Handler) Options {
	return func(s *Server) {
		s.metricsHandler = h
	}
}

// New creates a new HTTP server
func New(opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	if s.slackCtrl != nil {
		r.Route("/hooks/slack", func(r chi.Router) {
			if s.slackVerifier != nil {
				r.Use(verifySlackSignature(s.slackVerifier))
			}
			r.Post("/command", slashCommandHandler(s.slackCtrl))
			r.Post("/interaction", interactionHandler(s.slackCtrl))
		})
	}

	if s.oauth != nil {
		r.Get(NotionCallbackPath, notionCallbackHandler(s.oauth))
	}

	if s.metricsHandler != nil {
		r.Handle("/metrics", s.metricsHandler)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		safe.Write(r.Context(), w, []byte("OK"))
	})

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
