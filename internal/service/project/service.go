package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/workplanner/workplanner-backend-go/internal/domain/project"
	"github.com/workplanner/workplanner-backend-go/internal/domain/user"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/database"
	"github.com/workplanner/workplanner-backend-go/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

type ProjectServiceImpl struct {
	db          *database.DB
	projectRepo project.ProjectRepository
	userRepo    user.UserRepository
	now         func() time.Time
}

func NewProjectService(db *database.DB, projectRepo project.ProjectRepository, userRepo user.UserRepository) project.ProjectService {
	return &ProjectServiceImpl{
		db:          db,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// CreateProject implements project.ProjectService.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, ownerID int64, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	var created project.Project
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		p, err := s.projectRepo.Create(txCtx, project.Project{
			Name:      strings.TrimSpace(req.Name),
			StartDate: req.Start,
			EndDate:   req.End,
			OwnerID:   ownerID,
		})
		if err != nil {
			return err
		}

		if _, err := s.projectRepo.AddParticipant(txCtx, p.ID, ownerID); err != nil {
			return fmt.Errorf("failed to add owner as participant: %w", err)
		}

		created, err = s.projectRepo.GetByID(txCtx, p.ID)
		return err
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	slog.InfoContext(ctx, "project created", "project_id", created.ID, "owner_id", ownerID)
	return created.ToResponse(), nil
}

// ListProjects implements project.ProjectService.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context, filter project.ListFilter) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, p.ToResponse())
	}
	return responses, nil
}

// GetProject implements project.ProjectService.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, projectID int64) (project.ProjectDetailsResponse, error) {
	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return project.ProjectDetailsResponse{}, err
	}

	details := project.ProjectDetails{Project: p}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details.Participants, err = s.projectRepo.ListParticipants(gCtx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		details.Tasks, err = s.projectRepo.ListTasks(gCtx, projectID)
		return err
	})
	if err := g.Wait(); err != nil {
		return project.ProjectDetailsResponse{}, fmt.Errorf("failed to load project details: %w", err)
	}

	return details.ToResponse(), nil
}

// CloseProject implements project.ProjectService. The end date becomes the current time.
func (s *ProjectServiceImpl) CloseProject(ctx context.Context, userID, projectID int64) (project.ProjectResponse, error) {
	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	if !p.IsOwnedBy(userID) {
		return project.ProjectResponse{}, project.ErrNotProjectOwner
	}
	if p.IsClosed() {
		return project.ProjectResponse{}, project.ErrProjectAlreadyClosed
	}

	now := s.now().UTC()
	if now.Before(p.StartDate) {
		return project.ProjectResponse{}, project.ErrCloseBeforeStart
	}

	closed, err := s.projectRepo.Close(ctx, projectID, now)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	closed.Owner = p.Owner

	slog.InfoContext(ctx, "project closed", "project_id", projectID, "owner_id", userID)
	return closed.ToResponse(), nil
}

// ListParticipants implements project.ProjectService.
func (s *ProjectServiceImpl) ListParticipants(ctx context.Context, userID, projectID int64) ([]project.ParticipantResponse, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	participants, err := s.projectRepo.ListParticipants(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	responses := make([]project.ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		if p.User.ID == userID {
			continue
		}
		responses = append(responses, p.ToResponse())
	}
	return responses, nil
}

// AddParticipant implements project.ProjectService.
func (s *ProjectServiceImpl) AddParticipant(ctx context.Context, ownerID, projectID int64, req project.AddParticipantRequest) (project.ParticipantResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ParticipantResponse{}, err
	}

	if err := s.requireOwner(ctx, ownerID, projectID); err != nil {
		return project.ParticipantResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return project.ParticipantResponse{}, err
	}

	exists, err := s.projectRepo.IsParticipant(ctx, projectID, req.UserID)
	if err != nil {
		return project.ParticipantResponse{}, err
	}
	if exists {
		return project.ParticipantResponse{}, project.ErrAlreadyParticipant
	}

	p, err := s.projectRepo.AddParticipant(ctx, projectID, req.UserID)
	if err != nil {
		return project.ParticipantResponse{}, err
	}
	return p.ToResponse(), nil
}

// RemoveParticipant implements project.ProjectService.
func (s *ProjectServiceImpl) RemoveParticipant(ctx context.Context, ownerID, projectID, userID int64) error {
	if err := s.requireOwner(ctx, ownerID, projectID); err != nil {
		return err
	}
	if userID == ownerID {
		return project.ErrCannotRemoveOwner
	}

	exists, err := s.projectRepo.IsParticipant(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return project.ErrNotParticipant
	}

	return s.projectRepo.RemoveParticipant(ctx, projectID, userID)
}

func (s *ProjectServiceImpl) requireOwner(ctx context.Context, userID, projectID int64) error {
	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !p.IsOwnedBy(userID) {
		return project.ErrNotProjectOwner
	}
	return nil
}
