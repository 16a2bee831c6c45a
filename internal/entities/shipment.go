package entities

import "time"

type Shipment struct {
	ID            int64
	Tracking      string
	Carrier       Carrier
	Kind          ShipmentKind
	Cost          float64
	DispatchDate  *time.Time
	EstimatedDate *time.Time
	Status        ShipmentStatus
}
