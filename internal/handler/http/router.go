package http

import (
	"log/slog"

	"github.com/bluespark/hospital-hr-backend-go/internal/handler/http/middleware"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(logger *slog.Logger, allowedOrigins []string, JWTService jwt.Service, authHandler AuthHandler, employeeHandler EmployeeHandler, lifecycleHandler LifecycleHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/token", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Verifier(JWTService))
				r.Use(middleware.AuthRequired(JWTService))
				r.Post("/logout", authHandler.Logout)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.Verifier(JWTService))
			r.Use(middleware.AuthRequired(JWTService))
			r.Get("/me", authHandler.Me)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Get("/current", employeeHandler.ListCurrentEmployees)
			r.Get("/past", employeeHandler.ListPastEmployees)
			r.Get("/status/{status}", employeeHandler.ListEmployeesByStatus)
			r.Get("/sectors", employeeHandler.CountBySector)
			r.Get("/{id}", employeeHandler.GetEmployee)
			r.Get("/{id}/history", employeeHandler.GetEmployeeHistory)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(middleware.Verifier(JWTService))
				r.Use(middleware.AuthRequired(JWTService))
				r.Post("/", employeeHandler.CreateEmployee)
				r.Put("/{id}", employeeHandler.UpdateEmployee)
				r.Post("/{id}/reinstate", employeeHandler.ReinstateEmployee)
			})
		})

		r.Route("/lifecycle", func(r chi.Router) {
			r.Get("/vacations", lifecycleHandler.ListVacations)
			r.Get("/transfers", lifecycleHandler.ListTransfers)
			r.Get("/retirements", lifecycleHandler.ListRetirements)
			r.Get("/suspensions", lifecycleHandler.ListSuspensions)
			r.Get("/deaths", lifecycleHandler.ListDeaths)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(middleware.Verifier(JWTService))
				r.Use(middleware.AuthRequired(JWTService))
				r.Post("/vacations", lifecycleHandler.RecordVacation)
				r.Post("/transfers", lifecycleHandler.RecordTransfer)
				r.Post("/retirements", lifecycleHandler.RecordRetirement)
				r.Post("/suspensions", lifecycleHandler.RecordSuspension)
				r.Post("/deaths", lifecycleHandler.RecordDeath)
			})
		})
	})
	return r
}
