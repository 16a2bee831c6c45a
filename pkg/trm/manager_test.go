package trm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/mvegadev/order-shipment-service/pkg/trm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestManager_Do_Commit(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	manager := trm.NewManager(db)
	err := manager.Do(context.Background(), func(ctx context.Context) error {
		tx := trm.ExtractTx(ctx)
		require.NotNil(t, tx)
		_, err := tx.ExecContext(ctx, "UPDATE orders SET status = 'SHIPPED'")
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_Do_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	callbackErr := errors.New("insert failed")
	manager := trm.NewManager(db)
	err := manager.Do(context.Background(), func(ctx context.Context) error {
		return callbackErr
	})

	assert.ErrorIs(t, err, callbackErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExtractTx_NoTx(t *testing.T) {
	assert.Nil(t, trm.ExtractTx(context.Background()))
}
