package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/workplanner/workplanner-backend-go/internal/config"
	appHTTP "github.com/workplanner/workplanner-backend-go/internal/handler/http"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/comms"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/database"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/jwt"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/logger"
	"github.com/workplanner/workplanner-backend-go/internal/repository/postgresql"
	projectService "github.com/workplanner/workplanner-backend-go/internal/service/project"
	taskService "github.com/workplanner/workplanner-backend-go/internal/service/task"
	timeadminService "github.com/workplanner/workplanner-backend-go/internal/service/timeadmin"
	timeentryService "github.com/workplanner/workplanner-backend-go/internal/service/timeentry"
	userService "github.com/workplanner/workplanner-backend-go/internal/service/user"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.App.Env, cfg.App.LogLevel)
	slog.SetDefault(log)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	timeAdminRepo := postgresql.NewTimeAdministrationRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	commsClient := comms.New(cfg.Comms.BaseURL, cfg.Comms.Timeout, JWTService)

	timeAdminSvc := timeadminService.NewTimeAdministrationService(timeAdminRepo)
	vacationSvc := taskService.NewVacationService(db, taskRepo, userRepo, commsClient)
	timeEntrySvc := timeentryService.NewTimeEntryService(timeEntryRepo, taskRepo)
	projectSvc := projectService.NewProjectService(db, projectRepo, userRepo)
	taskSvc := taskService.NewTaskService(taskRepo, projectRepo)
	eventSvc := taskService.NewEventService(db, taskRepo, projectRepo, vacationSvc)
	userSvc := userService.NewUserService(userRepo)

	timeAdminHandler := appHTTP.NewTimeAdministrationHandler(timeAdminSvc)
	vacationHandler := appHTTP.NewVacationHandler(vacationSvc)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(timeEntrySvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc, taskSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)
	eventHandler := appHTTP.NewEventHandler(eventSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(
		log,
		cfg.CORS.AllowedOrigins,
		JWTService,
		timeAdminHandler,
		vacationHandler,
		timeEntryHandler,
		projectHandler,
		taskHandler,
		eventHandler,
		userHandler,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Server running", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server error", "error", err)
		os.Exit(1)
	}
}
