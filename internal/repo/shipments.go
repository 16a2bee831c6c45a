package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mvegadev/order-shipment-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type ShipmentRepo struct {
	database
	qb sq.StatementBuilderType
}

func NewShipmentRepo(db *sqlx.DB) *ShipmentRepo {
	return &ShipmentRepo{
		database: database{db: db},
		qb:       sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ShipmentRepo) Insert(ctx context.Context, shipment *entities.Shipment) error {
	query, args := r.qb.Insert("shipments").
		Columns("tracking", "carrier", "kind", "cost", "dispatch_date", "estimated_date", "status", "deleted").
		Values(
			shipment.Tracking, string(shipment.Carrier), string(shipment.Kind),
			shipment.Cost, dateToNullTime(shipment.DispatchDate),
			dateToNullTime(shipment.EstimatedDate), string(shipment.Status), false,
		).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return fmt.Errorf("failed to insert shipment %s: %w", shipment.Tracking, err)
	}
	if id <= 0 {
		return fmt.Errorf("shipment %s insert returned no generated id", shipment.Tracking)
	}

	shipment.ID = id
	return nil
}

func (r *ShipmentRepo) Update(ctx context.Context, shipment entities.Shipment) error {
	query, args := r.qb.Update("shipments").
		Set("tracking", shipment.Tracking).
		Set("carrier", string(shipment.Carrier)).
		Set("kind", string(shipment.Kind)).
		Set("cost", shipment.Cost).
		Set("dispatch_date", dateToNullTime(shipment.DispatchDate)).
		Set("estimated_date", dateToNullTime(shipment.EstimatedDate)).
		Set("status", string(shipment.Status)).
		Where(sq.Eq{"id": shipment.ID, "deleted": false}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update shipment %d: %w", shipment.ID, err)
	}
	return checkAffected(res, shipment.ID, entities.ErrShipmentNotFound)
}

func (r *ShipmentRepo) SoftDelete(ctx context.Context, id int64) error {
	query, args := r.qb.Update("shipments").
		Set("deleted", true).
		Where(sq.Eq{"id": id, "deleted": false}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete shipment %d: %w", id, err)
	}
	return checkAffected(res, id, entities.ErrShipmentNotFound)
}

func (r *ShipmentRepo) selectShipments() sq.SelectBuilder {
	return r.qb.Select(
		"id", "tracking", "carrier", "kind", "cost",
		"dispatch_date", "estimated_date", "status", "deleted").
		From("shipments").
		Where(sq.Eq{"deleted": false})
}

func (r *ShipmentRepo) GetByID(ctx context.Context, id int64) (entities.Shipment, error) {
	query, args := r.selectShipments().Where(sq.Eq{"id": id}).MustSql()

	var row shipmentRow
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Shipment{}, entities.ErrShipmentNotFound
	}
	if err != nil {
		return entities.Shipment{}, fmt.Errorf("failed to get shipment %d: %w", id, err)
	}

	return shipmentToEntity(row)
}

func (r *ShipmentRepo) List(ctx context.Context) ([]entities.Shipment, error) {
	query, args := r.selectShipments().OrderBy("id").MustSql()

	var rows []shipmentRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select shipments: %w", err)
	}

	shipments := make([]entities.Shipment, 0, len(rows))
	for _, row := range rows {
		shipment, err := shipmentToEntity(row)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, shipment)
	}
	return shipments, nil
}
