package handler

import (
	"time"

	"github.com/mvegadev/order-shipment-service/internal/entities"
)

type Shipment struct {
	ID            int64      `json:"id,omitempty"`
	Tracking      string     `json:"tracking" validate:"required"`
	Carrier       string     `json:"carrier" validate:"required,oneof=ANDREANI OCA CORREO_ARGENTINO"`
	Kind          string     `json:"kind" validate:"required,oneof=STANDARD EXPRESS PRIORITY"`
	Cost          float64    `json:"cost" validate:"gte=0"`
	DispatchDate  *time.Time `json:"dispatch_date,omitempty"`
	EstimatedDate *time.Time `json:"estimated_date,omitempty"`
	Status        string     `json:"status" validate:"required,oneof=IN_PREPARATION DISPATCHED IN_TRANSIT DELIVERED"`
}

type Order struct {
	ID           int64      `json:"id,omitempty"`
	Number       string     `json:"number" validate:"required"`
	Date         *time.Time `json:"date,omitempty"`
	CustomerName string     `json:"customer_name" validate:"required"`
	Total        float64    `json:"total" validate:"gte=0"`
	Status       string     `json:"status" validate:"required,oneof=NEW INVOICED SHIPPED DELIVERED CANCELLED"`
	Shipment     *Shipment  `json:"shipment,omitempty"`
}

func ShipmentEntityToJSON(s entities.Shipment) Shipment {
	return Shipment{
		ID:            s.ID,
		Tracking:      s.Tracking,
		Carrier:       string(s.Carrier),
		Kind:          string(s.Kind),
		Cost:          s.Cost,
		DispatchDate:  s.DispatchDate,
		EstimatedDate: s.EstimatedDate,
		Status:        string(s.Status),
	}
}

func ShipmentJSONToEntity(s Shipment) (entities.Shipment, error) {
	carrier, err := entities.ParseCarrier(s.Carrier)
	if err != nil {
		return entities.Shipment{}, err
	}
	kind, err := entities.ParseShipmentKind(s.Kind)
	if err != nil {
		return entities.Shipment{}, err
	}
	status, err := entities.ParseShipmentStatus(s.Status)
	if err != nil {
		return entities.Shipment{}, err
	}

	return entities.Shipment{
		ID:            s.ID,
		Tracking:      s.Tracking,
		Carrier:       carrier,
		Kind:          kind,
		Cost:          s.Cost,
		DispatchDate:  s.DispatchDate,
		EstimatedDate: s.EstimatedDate,
		Status:        status,
	}, nil
}

func OrderEntityToJSON(o entities.Order) Order {
	order := Order{
		ID:           o.ID,
		Number:       o.Number,
		Date:         o.Date,
		CustomerName: o.CustomerName,
		Total:        o.Total,
		Status:       string(o.Status),
	}
	if o.Shipment != nil {
		shipment := ShipmentEntityToJSON(*o.Shipment)
		order.Shipment = &shipment
	}
	return order
}

func OrderJSONToEntity(o Order) (entities.Order, error) {
	status, err := entities.ParseOrderStatus(o.Status)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		ID:           o.ID,
		Number:       o.Number,
		Date:         o.Date,
		CustomerName: o.CustomerName,
		Total:        o.Total,
		Status:       status,
	}

	if o.Shipment != nil {
		shipment, err := ShipmentJSONToEntity(*o.Shipment)
		if err != nil {
			return entities.Order{}, err
		}
		order.Shipment = &shipment
	}

	return order, nil
}
