package db

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockManager(t *testing.T) (*TxManager, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return &TxManager{pool: mock}, mock
}

func TestWithinTransaction_CommitsOnSuccess(t *testing.T) {
	m, mock := newMockManager(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE students").WithArgs(int64(42)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := m.WithinTransaction(context.Background(), func(ctx context.Context) error {
		_, err := Conn(ctx, nil).Exec(ctx, "UPDATE students SET name = 'x' WHERE id = $1", int64(42))
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_RollsBackOnError(t *testing.T) {
	m, mock := newMockManager(t)
	boom := errors.New("semester not found")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := m.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_NestedCallsShareTransaction(t *testing.T) {
	m, mock := newMockManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := m.WithinTransaction(context.Background(), func(outer context.Context) error {
		return m.WithinTransaction(outer, func(inner context.Context) error {
			assert.Equal(t, Conn(outer, nil), Conn(inner, nil))
			assert.NotNil(t, Conn(inner, nil))
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_RollsBackOnPanic(t *testing.T) {
	m, mock := newMockManager(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = m.WithinTransaction(context.Background(), func(ctx context.Context) error {
			panic("unexpected")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_BeginFailure(t *testing.T) {
	m, mock := newMockManager(t)
	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	called := false
	err := m.WithinTransaction(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}
