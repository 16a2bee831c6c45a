package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
	"github.com/mvegadev/order-shipment-service/internal/entities"
	"github.com/mvegadev/order-shipment-service/internal/handler"
	"github.com/mvegadev/order-shipment-service/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockOrderService, *mocks.MockShipmentService) {
	t.Helper()

	orders := mocks.NewMockOrderService(t)
	shipments := mocks.NewMockShipmentService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := chi.NewRouter()
	handler.NewHTTPHandler(logger, orders, shipments).Init(router)
	return router, orders, shipments
}

func doRequest(t *testing.T, router chi.Router, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validOrderBody() handler.Order {
	return handler.Order{
		Number:       "PED-TEST-001",
		CustomerName: "Juan Pérez",
		Total:        15000.0,
		Status:       "NEW",
		Shipment: &handler.Shipment{
			Tracking: "TEST-001",
			Carrier:  "ANDREANI",
			Kind:     "STANDARD",
			Cost:     500.0,
			Status:   "IN_PREPARATION",
		},
	}
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, orders, _ := newTestRouter(t)

		orders.EXPECT().
			CreateOrder(mock.Anything, mock.Anything).
			Return(entities.Order{
				ID:           42,
				Number:       "PED-TEST-001",
				CustomerName: "Juan Pérez",
				Total:        15000.0,
				Status:       entities.OrderStatusNew,
				Shipment: &entities.Shipment{
					ID:       7,
					Tracking: "TEST-001",
					Carrier:  entities.CarrierAndreani,
					Kind:     entities.ShipmentKindStandard,
					Cost:     500.0,
					Status:   entities.ShipmentStatusInPreparation,
				},
			}, nil).Once()

		rec := doRequest(t, router, http.MethodPost, "/orders", validOrderBody())
		require.Equal(t, http.StatusCreated, rec.Code)

		var got handler.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.EqualValues(t, 42, got.ID)
		require.NotNil(t, got.Shipment)
		assert.EqualValues(t, 7, got.Shipment.ID)
	})

	t.Run("duplicate number conflicts", func(t *testing.T) {
		router, orders, _ := newTestRouter(t)

		orders.EXPECT().
			CreateOrder(mock.Anything, mock.Anything).
			Return(entities.Order{}, &pq.Error{Code: "23505"}).Once()

		rec := doRequest(t, router, http.MethodPost, "/orders", validOrderBody())
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		body := validOrderBody()
		body.Number = ""
		rec := doRequest(t, router, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown enum rejected", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		body := validOrderBody()
		body.Status = "PENDING"
		rec := doRequest(t, router, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader([]byte("{broken")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, orders, _ := newTestRouter(t)

		orders.EXPECT().
			GetOrderByID(mock.Anything, int64(42)).
			Return(entities.Order{ID: 42, Number: "PED-TEST-001", Status: entities.OrderStatusNew}, nil).Once()

		rec := doRequest(t, router, http.MethodGet, "/orders/42", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got handler.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "PED-TEST-001", got.Number)
	})

	t.Run("not found", func(t *testing.T) {
		router, orders, _ := newTestRouter(t)

		orders.EXPECT().
			GetOrderByID(mock.Anything, int64(404)).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		rec := doRequest(t, router, http.MethodGet, "/orders/404", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		rec := doRequest(t, router, http.MethodGet, "/orders/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHTTPHandler_GetOrderByNumber(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, orders, _ := newTestRouter(t)

		orders.EXPECT().
			GetOrderByNumber(mock.Anything, "PED-TEST-001").
			Return(entities.Order{ID: 42, Number: "PED-TEST-001", Status: entities.OrderStatusNew}, nil).Once()

		rec := doRequest(t, router, http.MethodGet, "/orders/number/PED-TEST-001", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, orders, _ := newTestRouter(t)

		orders.EXPECT().
			GetOrderByNumber(mock.Anything, "PED-NONE").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		rec := doRequest(t, router, http.MethodGet, "/orders/number/PED-NONE", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHTTPHandler_UpdateOrder(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		router, orders, _ := newTestRouter(t)

		orders.EXPECT().
			UpdateOrder(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, order entities.Order) error {
				assert.EqualValues(t, 42, order.ID)
				return nil
			}).Once()

		rec := doRequest(t, router, http.MethodPut, "/orders/42", validOrderBody())
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, orders, _ := newTestRouter(t)

		orders.EXPECT().
			UpdateOrder(mock.Anything, mock.Anything).
			Return(entities.ErrOrderNotFound).Once()

		rec := doRequest(t, router, http.MethodPut, "/orders/999", validOrderBody())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHTTPHandler_DeleteOrder(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, orders, _ := newTestRouter(t)

		orders.EXPECT().DeleteOrder(mock.Anything, int64(42)).Return(nil).Once()

		rec := doRequest(t, router, http.MethodDelete, "/orders/42", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, orders, _ := newTestRouter(t)

		orders.EXPECT().
			DeleteOrder(mock.Anything, int64(404)).
			Return(entities.ErrOrderNotFound).Once()

		rec := doRequest(t, router, http.MethodDelete, "/orders/404", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHTTPHandler_Shipments(t *testing.T) {
	t.Run("get by id", func(t *testing.T) {
		router, _, shipments := newTestRouter(t)

		shipments.EXPECT().
			GetShipmentByID(mock.Anything, int64(7)).
			Return(entities.Shipment{
				ID:       7,
				Tracking: "TEST-001",
				Carrier:  entities.CarrierAndreani,
				Kind:     entities.ShipmentKindStandard,
				Status:   entities.ShipmentStatusInPreparation,
			}, nil).Once()

		rec := doRequest(t, router, http.MethodGet, "/shipments/7", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got handler.Shipment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "TEST-001", got.Tracking)
	})

	t.Run("get by id not found", func(t *testing.T) {
		router, _, shipments := newTestRouter(t)

		shipments.EXPECT().
			GetShipmentByID(mock.Anything, int64(404)).
			Return(entities.Shipment{}, entities.ErrShipmentNotFound).Once()

		rec := doRequest(t, router, http.MethodGet, "/shipments/404", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		router, _, shipments := newTestRouter(t)

		shipments.EXPECT().
			ListShipments(mock.Anything).
			Return([]entities.Shipment{
				{ID: 1, Tracking: "T-1", Carrier: entities.CarrierOCA, Kind: entities.ShipmentKindExpress, Status: entities.ShipmentStatusDispatched},
			}, nil).Once()

		rec := doRequest(t, router, http.MethodGet, "/shipments", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []handler.Shipment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "OCA", got[0].Carrier)
	})

	t.Run("delete not found", func(t *testing.T) {
		router, _, shipments := newTestRouter(t)

		shipments.EXPECT().
			DeleteShipment(mock.Anything, int64(404)).
			Return(entities.ErrShipmentNotFound).Once()

		rec := doRequest(t, router, http.MethodDelete, "/shipments/404", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
