package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/serenity/internal/repository"
	"github.com/limbo/serenity/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx          *chi.Mux
	userService service.UserServiceI
	workspaces  *service.Workspaces
	jwtService  JWTServiceI
	store       repository.KVStoreI
	appVersion  string
}

type ServicesList struct {
	UserService service.UserServiceI
	Workspaces  *service.Workspaces
	JwtService  JWTServiceI
	Store       repository.KVStoreI
	AppVersion  string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:          chi.NewMux(),
		userService: servicesOptions.UserService,
		workspaces:  servicesOptions.Workspaces,
		jwtService:  servicesOptions.JwtService,
		store:       servicesOptions.Store,
		appVersion:  servicesOptions.AppVersion,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)

		r.Get("/health", s.Health)
		r.Get("/crisis-resources", s.GetCrisisResources)
		r.Post("/auth/signup", s.SignUp)
		r.Post("/auth/login", s.Login)
		r.Post("/auth/guest", s.GuestLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Post("/auth/logout", s.Logout)
			r.Get("/me", s.Me)
			r.Delete("/me", s.DeleteAccount)

			r.Get("/moods", s.GetMoods)
			r.Post("/moods", s.AddMood)
			r.Get("/moods/summary", s.GetMoodSummary)
			r.Delete("/moods/{id}", s.DeleteMood)

			r.Get("/assessment", s.GetAssessment)
			r.Put("/assessment/answers/{questionID}", s.AnswerQuestion)
			r.Post("/assessment/next", s.NextQuestion)
			r.Post("/assessment/previous", s.PreviousQuestion)
			r.Post("/assessment/submit", s.SubmitAssessment)
			r.Post("/assessment/reset", s.ResetAssessment)
			r.Get("/assessment/results", s.GetAssessmentResults)

			r.Get("/companion/messages", s.GetMessages)
			r.Post("/companion/messages", s.SendMessage)
			r.Delete("/companion/messages", s.ClearMessages)

			r.Get("/settings", s.GetSettings)
			r.Put("/settings", s.UpdateSettings)

			r.Post("/data/clear", s.ClearData)
			r.Get("/export", s.Export)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("shutting server down")
		return srv.Shutdown(shutdownCtx)
	}
}
