package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTransaction_Commit(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := WithTransaction(context.Background(), db, func(ctx context.Context) error {
		_, ok := ctx.Value(txContextKey{}).(pgx.Tx)
		assert.True(t, ok)
		return nil
	})
	require.NoError(t, err)
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	want := errors.New("boom")
	err := WithTransaction(context.Background(), db, func(ctx context.Context) error {
		return want
	})
	assert.ErrorIs(t, err, want)
}

func TestWithTransaction_NestedJoinsOuter(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := WithTransaction(context.Background(), db, func(ctx context.Context) error {
		outer := GetQuerier(ctx, db)
		return WithTransaction(ctx, db, func(inner context.Context) error {
			assert.Equal(t, outer, GetQuerier(inner, db))
			return nil
		})
	})
	require.NoError(t, err)
}

func TestGetQuerier_WithoutTransaction(t *testing.T) {
	db, _ := newMockDB(t)

	assert.Equal(t, db.Pool, GetQuerier(context.Background(), db))
}
