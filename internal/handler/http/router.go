package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrmflow/hrm-backend-go/internal/handler/http/middleware"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	holidayHandler HolidayHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrm-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/companies", func(r chi.Router) {
				r.Get("/{id}", companyHandler.GetByID)

				// Superadmin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Get("/", companyHandler.List)
					r.Post("/", companyHandler.Create)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", employeeHandler.GetByID)

				// HR and superadmin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", employeeHandler.List)
					r.Get("/notices", employeeHandler.ListNotices)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/{id}", attendanceHandler.GetByID)
				r.Get("/employee/{employeeID}", attendanceHandler.GetDetails)

				// HR and superadmin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", attendanceHandler.Create)
					r.Put("/{id}", attendanceHandler.Update)
					r.Delete("/{id}", attendanceHandler.Delete)
					r.Get("/monthly-status", attendanceHandler.GetMonthlyStatus)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/employee/{employeeID}", leaveHandler.GetEmployeeLeaves)

				// HR and superadmin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", leaveHandler.ListByRange)
					r.Put("/{id}/approve", leaveHandler.Approve)
					r.Put("/{id}/reject", leaveHandler.Reject)
					r.Delete("/{id}", leaveHandler.Delete)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.ListByCycle)

				// HR and superadmin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})
		})
	})
	return r
}
