package service

import (
	"context"
	"log/slog"

	"github.com/mvegadev/order-shipment-service/internal/entities"
)

type ShipmentRepo interface {
	Insert(ctx context.Context, shipment *entities.Shipment) error
	Update(ctx context.Context, shipment entities.Shipment) error
	SoftDelete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (entities.Shipment, error)
	List(ctx context.Context) ([]entities.Shipment, error)
}

type ShipmentService struct {
	logger *slog.Logger
	repo   ShipmentRepo
}

func NewShipmentService(logger *slog.Logger, repo ShipmentRepo) *ShipmentService {
	return &ShipmentService{
		logger: logger.With(slog.String("service", "shipment")),
		repo:   repo,
	}
}

func (s *ShipmentService) CreateShipment(ctx context.Context, shipment entities.Shipment) (entities.Shipment, error) {
	if err := s.repo.Insert(ctx, &shipment); err != nil {
		return entities.Shipment{}, err
	}
	s.logger.Debug("shipment created", slog.Int64("id", shipment.ID), slog.String("tracking", shipment.Tracking))
	return shipment, nil
}

func (s *ShipmentService) GetShipmentByID(ctx context.Context, id int64) (entities.Shipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ShipmentService) ListShipments(ctx context.Context) ([]entities.Shipment, error) {
	return s.repo.List(ctx)
}

func (s *ShipmentService) UpdateShipment(ctx context.Context, shipment entities.Shipment) error {
	return s.repo.Update(ctx, shipment)
}

func (s *ShipmentService) DeleteShipment(ctx context.Context, id int64) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Debug("shipment deleted", slog.Int64("id", id))
	return nil
}
