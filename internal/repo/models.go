package repo

import (
	"database/sql"
	"time"

	"github.com/mvegadev/order-shipment-service/internal/entities"
)

type shipmentRow struct {
	ID            int64        `db:"id"`
	Tracking      string       `db:"tracking"`
	Carrier       string       `db:"carrier"`
	Kind          string       `db:"kind"`
	Cost          float64      `db:"cost"`
	DispatchDate  sql.NullTime `db:"dispatch_date"`
	EstimatedDate sql.NullTime `db:"estimated_date"`
	Status        string       `db:"status"`
	Deleted       bool         `db:"deleted"`
}

// orderRow holds the order columns plus the shipment columns produced by
// the LEFT JOIN. All joined columns are null-wrapped: a missed join
// leaves ship_id NULL and the order reads back without a shipment.
type orderRow struct {
	ID           int64         `db:"id"`
	Number       string        `db:"number"`
	Date         sql.NullTime  `db:"date"`
	CustomerName string        `db:"customer_name"`
	Total        float64       `db:"total"`
	Status       string        `db:"status"`
	ShipmentID   sql.NullInt64 `db:"shipment_id"`
	Deleted      bool          `db:"deleted"`

	ShipID            sql.NullInt64   `db:"ship_id"`
	ShipTracking      sql.NullString  `db:"ship_tracking"`
	ShipCarrier       sql.NullString  `db:"ship_carrier"`
	ShipKind          sql.NullString  `db:"ship_kind"`
	ShipCost          sql.NullFloat64 `db:"ship_cost"`
	ShipDispatchDate  sql.NullTime    `db:"ship_dispatch_date"`
	ShipEstimatedDate sql.NullTime    `db:"ship_estimated_date"`
	ShipStatus        sql.NullString  `db:"ship_status"`
}

func shipmentToEntity(r shipmentRow) (entities.Shipment, error) {
	carrier, err := entities.ParseCarrier(r.Carrier)
	if err != nil {
		return entities.Shipment{}, err
	}
	kind, err := entities.ParseShipmentKind(r.Kind)
	if err != nil {
		return entities.Shipment{}, err
	}
	status, err := entities.ParseShipmentStatus(r.Status)
	if err != nil {
		return entities.Shipment{}, err
	}

	return entities.Shipment{
		ID:            r.ID,
		Tracking:      r.Tracking,
		Carrier:       carrier,
		Kind:          kind,
		Cost:          r.Cost,
		DispatchDate:  nullTimeToDate(r.DispatchDate),
		EstimatedDate: nullTimeToDate(r.EstimatedDate),
		Status:        status,
	}, nil
}

func orderToEntity(r orderRow) (entities.Order, error) {
	status, err := entities.ParseOrderStatus(r.Status)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		ID:           r.ID,
		Number:       r.Number,
		Date:         nullTimeToDate(r.Date),
		CustomerName: r.CustomerName,
		Total:        r.Total,
		Status:       status,
	}

	if r.ShipID.Valid && r.ShipID.Int64 > 0 {
		shipment, err := shipmentToEntity(shipmentRow{
			ID:            r.ShipID.Int64,
			Tracking:      r.ShipTracking.String,
			Carrier:       r.ShipCarrier.String,
			Kind:          r.ShipKind.String,
			Cost:          r.ShipCost.Float64,
			DispatchDate:  r.ShipDispatchDate,
			EstimatedDate: r.ShipEstimatedDate,
			Status:        r.ShipStatus.String,
		})
		if err != nil {
			return entities.Order{}, err
		}
		order.Shipment = &shipment
	}

	return order, nil
}

func nullTimeToDate(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func dateToNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func shipmentIDArg(s *entities.Shipment) sql.NullInt64 {
	if s == nil || s.ID <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: s.ID, Valid: true}
}
