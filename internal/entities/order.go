package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

type Order struct {
	ID           int64
	Number       string
	Date         *time.Time
	CustomerName string
	Total        float64
	Status       OrderStatus

	// nil when no shipment is attached to the order
	Shipment *Shipment
}

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrShipmentNotFound = errors.New("shipment not found")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(Shipment{})
}
