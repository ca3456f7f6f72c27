package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pointago/pointage-backend-go/internal/config"
	"github.com/pointago/pointage-backend-go/internal/handler/http/middleware"
	"github.com/pointago/pointage-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	justificationHandler JustificationHandler,
	statisticsHandler StatisticsHandler,
	scheduleHandler ScheduleHandler,
	biometricHandler BiometricHandler,
	reportHandler ReportHandler,
	storageBasePath string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pointage-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Justification attachments stored by the local storage backend
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(storageBasePath))))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Device intake is authenticated by biometric id, not a session.
		r.Post("/biometric/punch", biometricHandler.ReceivePunch)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", attendanceHandler.PunchIn)
				r.Post("/punch-out", attendanceHandler.PunchOut)
				r.Get("/", attendanceHandler.List)
				r.Get("/{id}", attendanceHandler.Get)

				// RH/DG only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireValidator)
					r.Post("/manual-punch", attendanceHandler.ManualPunch)
					r.Post("/finalize-absences", attendanceHandler.FinalizeAbsences)
				})
			})

			r.Route("/justifications", func(r chi.Router) {
				r.Post("/", justificationHandler.Submit)
				r.Get("/", justificationHandler.List)
				r.Get("/{id}", justificationHandler.Get)

				// RH/DG only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireValidator)
					r.Post("/{id}/decide", justificationHandler.Decide)
				})
			})

			r.Get("/statistics", statisticsHandler.Get)

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)

				// RH/DG only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireValidator)
					r.Put("/", scheduleHandler.Upsert)
					r.Delete("/{employeeID}/{weekday}", scheduleHandler.Delete)
				})
			})

			r.Get("/biometric/logs", biometricHandler.ListLogs)

			r.Get("/reports/attendance", reportHandler.Export)
		})
	})

	return r
}
