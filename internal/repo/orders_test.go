package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/mvegadev/order-shipment-service/internal/entities"
	"github.com/mvegadev/order-shipment-service/internal/repo"
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

var orderColumns = []string{
	"id", "number", "date", "customer_name", "total", "status", "shipment_id", "deleted",
	"ship_id", "ship_tracking", "ship_carrier", "ship_kind",
	"ship_cost", "ship_dispatch_date", "ship_estimated_date", "ship_status",
}

func TestOrderRepo_Insert(t *testing.T) {
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	t.Run("assigns generated id", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewOrderRepo(db)

		mock.ExpectQuery("INSERT INTO orders").
			WithArgs("PED-TEST-001", date, "Juan Pérez", 15000.0, "NEW", int64(7), false).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		order := entities.Order{
			Number:       "PED-TEST-001",
			Date:         &date,
			CustomerName: "Juan Pérez",
			Total:        15000.0,
			Status:       entities.OrderStatusNew,
			Shipment:     &entities.Shipment{ID: 7, Tracking: "TEST-001"},
		}
		require.NoError(t, r.Insert(context.Background(), &order))
		assert.EqualValues(t, 42, order.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stores null foreign key without shipment", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewOrderRepo(db)

		mock.ExpectQuery("INSERT INTO orders").
			WithArgs("PED-2", nil, "Ana", 100.0, "NEW", nil, false).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

		order := entities.Order{Number: "PED-2", CustomerName: "Ana", Total: 100.0, Status: entities.OrderStatusNew}
		require.NoError(t, r.Insert(context.Background(), &order))
		assert.EqualValues(t, 2, order.ID)
	})

	t.Run("missing generated id is a failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewOrderRepo(db)

		mock.ExpectQuery("INSERT INTO orders").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		order := entities.Order{Number: "PED-3", Status: entities.OrderStatusNew}
		err := r.Insert(context.Background(), &order)
		assert.Error(t, err)
		assert.Zero(t, order.ID)
	})
}

func TestOrderRepo_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewOrderRepo(db)

		mock.ExpectExec("UPDATE orders SET").
			WillReturnResult(sqlmock.NewResult(0, 1))

		order := entities.Order{ID: 5, Number: "PED-5", Status: entities.OrderStatusInvoiced}
		assert.NoError(t, r.Update(context.Background(), order))
	})

	t.Run("zero affected rows reports not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewOrderRepo(db)

		mock.ExpectExec("UPDATE orders SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		order := entities.Order{ID: 999, Number: "PED-999", Status: entities.OrderStatusNew}
		err := r.Update(context.Background(), order)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderRepo_SoftDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewOrderRepo(db)

		mock.ExpectExec("UPDATE orders SET deleted").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.SoftDelete(context.Background(), 5))
	})

	t.Run("already deleted reports not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewOrderRepo(db)

		mock.ExpectExec("UPDATE orders SET deleted").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := r.SoftDelete(context.Background(), 5)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderRepo_GetByID(t *testing.T) {
	dispatch := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("reconstructs aggregate with shipment", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewOrderRepo(db)

		rows := sqlmock.NewRows(orderColumns).AddRow(
			42, "PED-TEST-001", nil, "Juan Pérez", 15000.0, "NEW", 7, false,
			7, "TEST-001", "ANDREANI", "STANDARD", 500.0, dispatch, nil, "IN_PREPARATION",
		)
		mock.ExpectQuery("SELECT o.id, o.number .+ FROM orders o LEFT JOIN shipments s").
			WillReturnRows(rows)

		order, err := r.GetByID(context.Background(), 42)
		require.NoError(t, err)
		assert.EqualValues(t, 42, order.ID)
		assert.Equal(t, "PED-TEST-001", order.Number)
		require.NotNil(t, order.Shipment)
		assert.EqualValues(t, 7, order.Shipment.ID)
		assert.Equal(t, "TEST-001", order.Shipment.Tracking)
		assert.Equal(t, entities.CarrierAndreani, order.Shipment.Carrier)
		assert.Equal(t, entities.ShipmentKindStandard, order.Shipment.Kind)
		assert.Equal(t, entities.ShipmentStatusInPreparation, order.Shipment.Status)
		require.NotNil(t, order.Shipment.DispatchDate)
		assert.True(t, dispatch.Equal(*order.Shipment.DispatchDate))
		assert.Nil(t, order.Shipment.EstimatedDate)
	})

	t.Run("missed join leaves shipment empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewOrderRepo(db)

		rows := sqlmock.NewRows(orderColumns).AddRow(
			43, "PED-2", nil, "Ana", 100.0, "NEW", nil, false,
			nil, nil, nil, nil, nil, nil, nil, nil,
		)
		mock.ExpectQuery("SELECT o.id, o.number .+ FROM orders o LEFT JOIN shipments s").
			WillReturnRows(rows)

		order, err := r.GetByID(context.Background(), 43)
		require.NoError(t, err)
		assert.Nil(t, order.Shipment)
	})

	t.Run("no rows reports not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewOrderRepo(db)

		mock.ExpectQuery("SELECT o.id, o.number .+ FROM orders o").
			WillReturnRows(sqlmock.NewRows(orderColumns))

		_, err := r.GetByID(context.Background(), 404)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("unknown status is a decoding failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewOrderRepo(db)

		rows := sqlmock.NewRows(orderColumns).AddRow(
			44, "PED-3", nil, "Luis", 1.0, "PENDING", nil, false,
			nil, nil, nil, nil, nil, nil, nil, nil,
		)
		mock.ExpectQuery("SELECT o.id, o.number .+ FROM orders o").
			WillReturnRows(rows)

		_, err := r.GetByID(context.Background(), 44)
		assert.ErrorContains(t, err, "unknown order status")
	})
}

func TestOrderRepo_GetByNumber(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewOrderRepo(db)

	rows := sqlmock.NewRows(orderColumns).AddRow(
		42, "PED-TEST-001", nil, "Juan Pérez", 15000.0, "NEW", 7, false,
		7, "TEST-001", "ANDREANI", "STANDARD", 500.0, nil, nil, "IN_PREPARATION",
	)
	mock.ExpectQuery("SELECT o.id, o.number .+ FROM orders o LEFT JOIN shipments s").
		WithArgs(false, "PED-TEST-001").
		WillReturnRows(rows)

	order, err := r.GetByNumber(context.Background(), "PED-TEST-001")
	require.NoError(t, err)
	assert.EqualValues(t, 42, order.ID)
	require.NotNil(t, order.Shipment)
	assert.Equal(t, "TEST-001", order.Shipment.Tracking)
}

func TestOrderRepo_List(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewOrderRepo(db)

	rows := sqlmock.NewRows(orderColumns).
		AddRow(1, "PED-1", nil, "Ana", 10.0, "NEW", nil, false,
			nil, nil, nil, nil, nil, nil, nil, nil).
		AddRow(2, "PED-2", nil, "Luis", 20.0, "SHIPPED", 3, false,
			3, "TRK-3", "OCA", "EXPRESS", 300.0, nil, nil, "DISPATCHED")
	mock.ExpectQuery("SELECT o.id, o.number .+ FROM orders o LEFT JOIN shipments s .+ ORDER BY o.id").
		WillReturnRows(rows)

	orders, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Nil(t, orders[0].Shipment)
	require.NotNil(t, orders[1].Shipment)
	assert.Equal(t, entities.CarrierOCA, orders[1].Shipment.Carrier)
}
