package entities

import "fmt"

// Statuses are stored by symbolic name. Parsing is exhaustive: a name
// that matches no declared variant is an error, never a default.

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusInvoiced  OrderStatus = "INVOICED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

var orderStatuses = map[string]OrderStatus{
	"NEW":       OrderStatusNew,
	"INVOICED":  OrderStatusInvoiced,
	"SHIPPED":   OrderStatusShipped,
	"DELIVERED": OrderStatusDelivered,
	"CANCELLED": OrderStatusCancelled,
}

func ParseOrderStatus(name string) (OrderStatus, error) {
	s, ok := orderStatuses[name]
	if !ok {
		return "", fmt.Errorf("unknown order status %q", name)
	}
	return s, nil
}

type Carrier string

const (
	CarrierAndreani        Carrier = "ANDREANI"
	CarrierOCA             Carrier = "OCA"
	CarrierCorreoArgentino Carrier = "CORREO_ARGENTINO"
)

var carriers = map[string]Carrier{
	"ANDREANI":         CarrierAndreani,
	"OCA":              CarrierOCA,
	"CORREO_ARGENTINO": CarrierCorreoArgentino,
}

func ParseCarrier(name string) (Carrier, error) {
	c, ok := carriers[name]
	if !ok {
		return "", fmt.Errorf("unknown carrier %q", name)
	}
	return c, nil
}

type ShipmentKind string

const (
	ShipmentKindStandard ShipmentKind = "STANDARD"
	ShipmentKindExpress  ShipmentKind = "EXPRESS"
	ShipmentKindPriority ShipmentKind = "PRIORITY"
)

var shipmentKinds = map[string]ShipmentKind{
	"STANDARD": ShipmentKindStandard,
	"EXPRESS":  ShipmentKindExpress,
	"PRIORITY": ShipmentKindPriority,
}

func ParseShipmentKind(name string) (ShipmentKind, error) {
	k, ok := shipmentKinds[name]
	if !ok {
		return "", fmt.Errorf("unknown shipment kind %q", name)
	}
	return k, nil
}

type ShipmentStatus string

const (
	ShipmentStatusInPreparation ShipmentStatus = "IN_PREPARATION"
	ShipmentStatusDispatched    ShipmentStatus = "DISPATCHED"
	ShipmentStatusInTransit     ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusDelivered     ShipmentStatus = "DELIVERED"
)

var shipmentStatuses = map[string]ShipmentStatus{
	"IN_PREPARATION": ShipmentStatusInPreparation,
	"DISPATCHED":     ShipmentStatusDispatched,
	"IN_TRANSIT":     ShipmentStatusInTransit,
	"DELIVERED":      ShipmentStatusDelivered,
}

func ParseShipmentStatus(name string) (ShipmentStatus, error) {
	s, ok := shipmentStatuses[name]
	if !ok {
		return "", fmt.Errorf("unknown shipment status %q", name)
	}
	return s, nil
}
