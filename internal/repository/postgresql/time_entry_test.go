package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workplanner/workplanner-backend-go/internal/domain/timeentry"
)

var timeEntryCols = []string{"id", "task_id", "user_id", "date", "hours", "note", "created_at"}

func TestTimeEntryRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimeEntryRepository(db)
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO time_entries")).
		WithArgs(int64(4), int64(2), date, 7.5, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(timeEntryCols).
			AddRow(int64(30), int64(4), int64(2), date, 7.5, nil, createdStamp))

	created, err := repo.Create(context.Background(), timeentry.TimeEntry{TaskID: 4, UserID: 2, Date: date, Hours: 7.5})
	require.NoError(t, err)

	assert.Equal(t, int64(30), created.ID)
	assert.Equal(t, 7.5, created.Hours)
	assert.Nil(t, created.Note)
}

func TestTimeEntryRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimeEntryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM time_entries WHERE id = $1")).
		WithArgs(int64(30)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 30)
	assert.ErrorIs(t, err, timeentry.ErrTimeEntryNotFound)
}

func TestTimeEntryRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimeEntryRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM time_entries WHERE id = $1")).
		WithArgs(int64(30)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), 30))
}

func TestTimeEntryRepository_Delete_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimeEntryRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM time_entries WHERE id = $1")).
		WithArgs(int64(30)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 30), timeentry.ErrTimeEntryNotFound)
}
