package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workplanner/workplanner-backend-go/internal/domain/user"
	"github.com/workplanner/workplanner-backend-go/internal/handler/http/middleware"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/jwt"
)

func NewRouter(
	logger *slog.Logger,
	allowedOrigins []string,
	JWTService jwt.Service,
	timeAdminHandler TimeAdministrationHandler,
	vacationHandler VacationHandler,
	timeEntryHandler TimeEntryHandler,
	projectHandler ProjectHandler,
	taskHandler TaskHandler,
	eventHandler EventHandler,
	userHandler UserHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
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

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/users/time-administration", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionTimeAdministrationView))
				r.Get("/", timeAdminHandler.Get)
				r.Get("/export", timeAdminHandler.Export)
			})

			r.With(middleware.RequireManager).Get("/approvals", vacationHandler.ListPending)

			r.With(middleware.RequirePermission(user.PermissionVacationRequest)).Post("/vacations", vacationHandler.Create)

			r.With(middleware.RequirePermission(user.PermissionProjectManage)).Get("/users", userHandler.List)

			r.Route("/projects", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionProjectManage))
				r.Post("/", projectHandler.Create)
				r.Get("/", projectHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", projectHandler.Get)
					r.Post("/close", projectHandler.Close)
					r.Get("/participants", projectHandler.ListParticipants)
					r.Post("/participants", projectHandler.AddParticipant)
					r.Delete("/participants/{userId}", projectHandler.RemoveParticipant)
					r.Post("/tasks", projectHandler.CreateTask)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionTaskManage))
				r.Post("/", taskHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", taskHandler.Get)
					r.Delete("/", taskHandler.Delete)
					r.Post("/assign", taskHandler.Assign)
					r.Post("/toggle", taskHandler.Toggle)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionVacationApprove))
						r.Post("/approve", vacationHandler.Approve)
						r.Post("/reject", vacationHandler.Reject)
					})
				})
			})

			r.Route("/events", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionTaskManage))
				r.Get("/", eventHandler.List)
				r.Post("/", eventHandler.Save)
			})

			r.Route("/time-entries", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionTimeEntryManageOwn))
				r.Post("/", timeEntryHandler.Create)
				r.Delete("/{id}", timeEntryHandler.Delete)
			})
		})
	})
	return r
}
