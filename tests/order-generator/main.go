package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Shipment struct {
	Tracking      string  `json:"tracking"`
	Carrier       string  `json:"carrier"`
	Kind          string  `json:"kind"`
	Cost          float64 `json:"cost"`
	Status        string  `json:"status"`
	DispatchDate  *string `json:"dispatch_date,omitempty"`
	EstimatedDate *string `json:"estimated_date,omitempty"`
}

type Order struct {
	Number       string    `json:"number"`
	Date         string    `json:"date"`
	CustomerName string    `json:"customer_name"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	Shipment     *Shipment `json:"shipment,omitempty"`
}

var (
	carriers  = []string{"ANDREANI", "OCA", "CORREO_ARGENTINO"}
	kinds     = []string{"STANDARD", "EXPRESS", "PRIORITY"}
	customers = []string{"Juan Pérez", "María García", "Carlos López", "Ana Martínez"}
)

func randomString(n int) string {
	letters := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomOrder() Order {
	order := Order{
		Number:       fmt.Sprintf("PED-%s", randomString(8)),
		Date:         time.Now().Format(time.RFC3339),
		CustomerName: customers[rand.Intn(len(customers))],
		Total:        float64(rand.Intn(50000)) + rand.Float64(),
		Status:       "NEW",
	}

	// roughly one order in five ships later, without a shipment attached
	if rand.Intn(5) != 0 {
		order.Shipment = &Shipment{
			Tracking: "TRK-" + randomString(10),
			Carrier:  carriers[rand.Intn(len(carriers))],
			Kind:     kinds[rand.Intn(len(kinds))],
			Cost:     float64(rand.Intn(2000)) + 100,
			Status:   "IN_PREPARATION",
		}
	}

	return order
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "orders",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("order generated", order.Number)
		case <-ctx.Done():
			return
		}
	}
}
