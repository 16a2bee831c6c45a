package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mvegadev/order-shipment-service/internal/entities"
	"github.com/mvegadev/order-shipment-service/internal/service"
	mocks "github.com/mvegadev/order-shipment-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestShipmentService(t *testing.T) (*service.ShipmentService, *mocks.MockShipmentRepo) {
	t.Helper()

	repo := mocks.NewMockShipmentRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewShipmentService(logger, repo), repo
}

func TestShipmentService_CreateShipment(t *testing.T) {
	t.Run("assigns generated id", func(t *testing.T) {
		svc, repo := newTestShipmentService(t)

		repo.EXPECT().
			Insert(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, s *entities.Shipment) error {
				s.ID = 7
				return nil
			}).Once()

		created, err := svc.CreateShipment(context.Background(), entities.Shipment{
			Tracking: "TEST-001",
			Carrier:  entities.CarrierAndreani,
			Kind:     entities.ShipmentKindStandard,
			Status:   entities.ShipmentStatusInPreparation,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 7, created.ID)
		assert.Equal(t, "TEST-001", created.Tracking)
	})

	t.Run("insert failure propagates", func(t *testing.T) {
		svc, repo := newTestShipmentService(t)
		dbError := errors.New("db error")

		repo.EXPECT().Insert(mock.Anything, mock.Anything).Return(dbError).Once()

		_, err := svc.CreateShipment(context.Background(), entities.Shipment{Tracking: "T-1"})
		assert.ErrorIs(t, err, dbError)
	})
}

func TestShipmentService_GetShipmentByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo := newTestShipmentService(t)
		shipment := entities.Shipment{ID: 7, Tracking: "TEST-001", Carrier: entities.CarrierOCA}

		repo.EXPECT().GetByID(mock.Anything, int64(7)).Return(shipment, nil).Once()

		got, err := svc.GetShipmentByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, shipment, got)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newTestShipmentService(t)

		repo.EXPECT().
			GetByID(mock.Anything, int64(404)).
			Return(entities.Shipment{}, entities.ErrShipmentNotFound).Once()

		_, err := svc.GetShipmentByID(context.Background(), 404)
		assert.ErrorIs(t, err, entities.ErrShipmentNotFound)
	})
}

func TestShipmentService_UpdateShipment(t *testing.T) {
	svc, repo := newTestShipmentService(t)
	shipment := entities.Shipment{ID: 7, Tracking: "TEST-001", Status: entities.ShipmentStatusDispatched}

	repo.EXPECT().Update(mock.Anything, shipment).Return(nil).Once()

	assert.NoError(t, svc.UpdateShipment(context.Background(), shipment))
}

func TestShipmentService_DeleteShipment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, repo := newTestShipmentService(t)
		repo.EXPECT().SoftDelete(mock.Anything, int64(7)).Return(nil).Once()

		assert.NoError(t, svc.DeleteShipment(context.Background(), 7))
	})

	t.Run("not found propagates", func(t *testing.T) {
		svc, repo := newTestShipmentService(t)
		repo.EXPECT().
			SoftDelete(mock.Anything, int64(404)).
			Return(entities.ErrShipmentNotFound).Once()

		err := svc.DeleteShipment(context.Background(), 404)
		assert.ErrorIs(t, err, entities.ErrShipmentNotFound)
	})
}
