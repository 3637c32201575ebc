package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workplanner/workplanner-backend-go/internal/domain/user"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, image, role, manager_id
		FROM users
		WHERE id = $1
	`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// GetManager implements user.UserRepository.
func (r *userRepositoryImpl) GetManager(ctx context.Context, userID int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.name, m.email, m.image, m.role, m.manager_id
		FROM users u
		JOIN users m ON m.id = u.manager_id
		WHERE u.id = $1
	`

	u, err := scanUser(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get manager: %w", err)
	}
	return u, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT u.id, u.name, u.email, u.image, u.role, u.manager_id FROM users u`
	args := []interface{}{}

	switch {
	case filter.ExcludeProjectID != nil:
		query += ` WHERE NOT EXISTS (SELECT 1 FROM user_projects up WHERE up.user_id = u.id AND up.project_id = $1)`
		args = append(args, *filter.ExcludeProjectID)
	case filter.ProjectID != nil:
		query += ` JOIN user_projects up ON up.user_id = u.id WHERE up.project_id = $1`
		args = append(args, *filter.ProjectID)
	}
	query += ` ORDER BY u.name ASC NULLS LAST, u.id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var name, email, image sql.NullString
	var role string
	var managerID sql.NullInt64
	if err := row.Scan(&u.ID, &name, &email, &image, &role, &managerID); err != nil {
		return user.User{}, err
	}
	u.Name = stringPtr(name)
	u.Email = stringPtr(email)
	u.Image = stringPtr(image)
	u.Role = user.Role(role)
	u.ManagerID = int64Ptr(managerID)
	return u, nil
}
