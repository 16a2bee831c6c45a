package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mvegadev/order-shipment-service/internal/entities"
	"github.com/mvegadev/order-shipment-service/pkg/trm"
)

type OrderRepo interface {
	Insert(ctx context.Context, order *entities.Order) error
	Update(ctx context.Context, order entities.Order) error
	SoftDelete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (entities.Order, error)
	GetByNumber(ctx context.Context, number string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}

type ShipmentInserter interface {
	Insert(ctx context.Context, shipment *entities.Shipment) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
}

type OrderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	shipments ShipmentInserter
	cache     Cache
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, orders OrderRepo, shipments ShipmentInserter, cache Cache) *OrderService {
	return &OrderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		shipments: shipments,
		cache:     cache,
	}
}

// CreateOrder persists the order together with its shipment as one
// atomic unit. The shipment is inserted first so its generated id can be
// stored as the order's foreign key; any failure rolls both inserts
// back. Errors are propagated unchanged, without retries.
func (s *OrderService) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if order.Shipment != nil {
			if err := s.shipments.Insert(ctx, order.Shipment); err != nil {
				return fmt.Errorf("failed to insert shipment: %w", err)
			}
		}
		if err := s.orders.Insert(ctx, &order); err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order created", slog.Int64("id", order.ID), slog.String("number", order.Number))
	return order, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	key := orderCacheKey(id)
	if data, ok := s.cache.Get(key); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.Int64("id", id), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Int64("id", id), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(key, data)
	return order, nil
}

func (s *OrderService) GetOrderByNumber(ctx context.Context, number string) (entities.Order, error) {
	return s.orders.GetByNumber(ctx, number)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) UpdateOrder(ctx context.Context, order entities.Order) error {
	if err := s.orders.Update(ctx, order); err != nil {
		return err
	}
	s.cache.Remove(orderCacheKey(order.ID))
	return nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.orders.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.cache.Remove(orderCacheKey(id))
	s.logger.Debug("order deleted", slog.Int64("id", id))
	return nil
}

func orderCacheKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
