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

type OrderRepo struct {
	database
	qb sq.StatementBuilderType
}

func NewOrderRepo(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{
		database: database{db: db},
		qb:       sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Soft-deleted shipments are filtered out of the join, so an order whose
// shipment was deleted reads back shipment-less.
const shipmentJoin = "shipments s ON s.id = o.shipment_id AND s.deleted = FALSE"

func (r *OrderRepo) selectOrders() sq.SelectBuilder {
	return r.qb.Select(
		"o.id", "o.number", "o.date", "o.customer_name", "o.total",
		"o.status", "o.shipment_id", "o.deleted",
		"s.id AS ship_id", "s.tracking AS ship_tracking",
		"s.carrier AS ship_carrier", "s.kind AS ship_kind",
		"s.cost AS ship_cost", "s.dispatch_date AS ship_dispatch_date",
		"s.estimated_date AS ship_estimated_date", "s.status AS ship_status").
		From("orders o").
		LeftJoin(shipmentJoin).
		Where(sq.Eq{"o.deleted": false})
}

// Insert writes the order and assigns its generated id. The shipment
// reference, when present, must already carry an id.
func (r *OrderRepo) Insert(ctx context.Context, order *entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns("number", "date", "customer_name", "total", "status", "shipment_id", "deleted").
		Values(
			order.Number, dateToNullTime(order.Date), order.CustomerName,
			order.Total, string(order.Status), shipmentIDArg(order.Shipment), false,
		).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return fmt.Errorf("failed to insert order %s: %w", order.Number, err)
	}
	if id <= 0 {
		return fmt.Errorf("order %s insert returned no generated id", order.Number)
	}

	order.ID = id
	return nil
}

func (r *OrderRepo) Update(ctx context.Context, order entities.Order) error {
	query, args := r.qb.Update("orders").
		Set("number", order.Number).
		Set("date", dateToNullTime(order.Date)).
		Set("customer_name", order.CustomerName).
		Set("total", order.Total).
		Set("status", string(order.Status)).
		Set("shipment_id", shipmentIDArg(order.Shipment)).
		Where(sq.Eq{"id": order.ID, "deleted": false}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order %d: %w", order.ID, err)
	}
	return checkAffected(res, order.ID, entities.ErrOrderNotFound)
}

func (r *OrderRepo) SoftDelete(ctx context.Context, id int64) error {
	query, args := r.qb.Update("orders").
		Set("deleted", true).
		Where(sq.Eq{"id": id, "deleted": false}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	return checkAffected(res, id, entities.ErrOrderNotFound)
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (entities.Order, error) {
	query, args := r.selectOrders().Where(sq.Eq{"o.id": id}).MustSql()

	var row orderRow
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order %d: %w", id, err)
	}

	return orderToEntity(row)
}

func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (entities.Order, error) {
	query, args := r.selectOrders().Where(sq.Eq{"o.number": number}).MustSql()

	var row orderRow
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order %s: %w", number, err)
	}

	return orderToEntity(row)
}

func (r *OrderRepo) List(ctx context.Context) ([]entities.Order, error) {
	query, args := r.selectOrders().OrderBy("o.id").MustSql()

	var rows []orderRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		order, err := orderToEntity(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func checkAffected(res sql.Result, id int64, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("id %d: %w", id, notFound)
	}
	return nil
}
