package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/roas-api/internal/config"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewConnectionFromDB(db, config.DriverPostgres), mock
}

func TestRunInTransaction_Commit(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM campaigns").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec("DELETE FROM campaigns")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollbackKeepsOriginalError(t *testing.T) {
	conn, mock := newMockConnection(t)
	original := errors.New("falha no driver")

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("rollback falhou"))

	err := conn.RunInTransaction(context.Background(), func(*sql.Tx) error {
		return original
	})

	assert.ErrorIs(t, err, original)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_PanicRollsBack(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = conn.RunInTransaction(context.Background(), func(*sql.Tx) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, squirrel.Dollar, NewConnectionFromDB(nil, config.DriverPostgres).Placeholder())
	assert.Equal(t, squirrel.Dollar, NewConnectionFromDB(nil, config.DriverPgx).Placeholder())
	assert.Equal(t, squirrel.Question, NewConnectionFromDB(nil, config.DriverSQLite).Placeholder())
}
