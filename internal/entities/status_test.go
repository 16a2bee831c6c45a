package entities_test

import (
	"testing"

	"github.com/mvegadev/order-shipment-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, name := range []string{"NEW", "INVOICED", "SHIPPED", "DELIVERED", "CANCELLED"} {
		s, err := entities.ParseOrderStatus(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(s))
	}

	_, err := entities.ParseOrderStatus("PENDING")
	assert.Error(t, err)

	// names are matched exactly, no normalization
	_, err = entities.ParseOrderStatus("new")
	assert.Error(t, err)
}

func TestParseCarrier(t *testing.T) {
	c, err := entities.ParseCarrier("ANDREANI")
	require.NoError(t, err)
	assert.Equal(t, entities.CarrierAndreani, c)

	_, err = entities.ParseCarrier("DHL")
	assert.Error(t, err)
}

func TestParseShipmentKind(t *testing.T) {
	k, err := entities.ParseShipmentKind("EXPRESS")
	require.NoError(t, err)
	assert.Equal(t, entities.ShipmentKindExpress, k)

	_, err = entities.ParseShipmentKind("")
	assert.Error(t, err)
}

func TestParseShipmentStatus(t *testing.T) {
	s, err := entities.ParseShipmentStatus("IN_PREPARATION")
	require.NoError(t, err)
	assert.Equal(t, entities.ShipmentStatusInPreparation, s)

	_, err = entities.ParseShipmentStatus("LOST")
	assert.Error(t, err)
}
