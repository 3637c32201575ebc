package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workplanner/workplanner-backend-go/internal/domain/user"
)

type fakeUserRepository struct {
	user.UserRepository

	users  []user.User
	err    error
	filter user.ListFilter
}

func (f *fakeUserRepository) List(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	f.filter = filter
	return f.users, f.err
}

func TestListUsers(t *testing.T) {
	name := "Alice"
	projectID := int64(7)
	repo := &fakeUserRepository{users: []user.User{
		{ID: 1, Name: &name, Role: user.RoleManager},
		{ID: 2, Role: user.RoleEmployee},
	}}
	svc := NewUserService(repo)

	got, err := svc.ListUsers(context.Background(), user.ListFilter{ExcludeProjectID: &projectID})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Alice", *got[0].Name)
	assert.Equal(t, user.RoleEmployee, got[1].Role)
	require.NotNil(t, repo.filter.ExcludeProjectID)
	assert.Equal(t, projectID, *repo.filter.ExcludeProjectID)
}

func TestListUsers_Empty(t *testing.T) {
	svc := NewUserService(&fakeUserRepository{})

	got, err := svc.ListUsers(context.Background(), user.ListFilter{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListUsers_Error(t *testing.T) {
	svc := NewUserService(&fakeUserRepository{err: errors.New("db down")})

	_, err := svc.ListUsers(context.Background(), user.ListFilter{})
	assert.ErrorContains(t, err, "failed to list users")
}
