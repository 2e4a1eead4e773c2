package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestCreateOrder_SendsBodyAndDecodesResponse(t *testing.T) {
	var gotBody models.OrderCreate
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{
			ID:          501,
			OrderNumber: "ORD-501",
			UserID:      gotBody.UserID,
			Status:      models.OrderPending,
			TotalAmount: 53.20,
		})
	}))
	defer srv.Close()

	oc := NewOrderClient(NewClient("orders", srv.URL+"/api", srv.Client(), staticToken("tok-1")))

	order, err := oc.CreateOrder(context.Background(), models.OrderCreate{
		UserID:          42,
		ShippingAddress: "1 Main St, Springfield, IL 62701, US",
		BillingAddress:  "1 Main St, Springfield, IL 62701, US",
		Items:           []models.OrderItem{{ProductID: 1, ProductName: "widget", ProductSKU: "W-1", Quantity: 2, UnitPrice: 20}},
		TaxAmount:       3.20,
		ShippingAmount:  10,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(501), order.ID)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, int64(42), gotBody.UserID)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestAPIError_CarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"status":422,"message":"insufficient stock for product 1"}`))
	}))
	defer srv.Close()

	oc := NewOrderClient(NewClient("orders", srv.URL, srv.Client(), nil))

	_, err := oc.CreateOrder(context.Background(), models.OrderCreate{UserID: 42})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "insufficient stock for product 1", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "insufficient stock")
}

func TestAPIError_NonJSONBodyKeptVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	pc := NewPaymentClient(NewClient("payments", srv.URL, srv.Client(), nil))

	_, err := pc.ProcessPayment(context.Background(), models.PaymentCreate{OrderID: 501})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestAddressesByUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/addresses/user/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Address{
			{ID: 7, UserID: 42, AddressLine1: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701", Country: "US", IsDefault: true},
		})
	}))
	defer srv.Close()

	uc := NewUserClient(NewClient("users", srv.URL, srv.Client(), nil))

	addrs, err := uc.AddressesByUser(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.True(t, addrs[0].IsDefault)
	assert.Equal(t, "1 Main St, Springfield, IL 62701, US", addrs[0].Format())
}

func TestSearchProducts_EncodesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/search", r.URL.Path)
		require.Equal(t, "red shoes", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Product{{ID: 1, Name: "red shoes", SKU: "RS-1", Price: 59.99}})
	}))
	defer srv.Close()

	cc := NewCatalogClient(NewClient("catalog", srv.URL, srv.Client(), nil))

	products, err := cc.SearchProducts(context.Background(), "red shoes")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "RS-1", products[0].SKU)
}

func TestUpdateOrderStatus_SendsStatusAsQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/orders/501/status", r.URL.Path)
		require.Equal(t, "CANCELLED", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Order{ID: 501, Status: models.OrderCancelled})
	}))
	defer srv.Close()

	oc := NewOrderClient(NewClient("orders", srv.URL, srv.Client(), nil))

	order, err := oc.UpdateOrderStatus(context.Background(), 501, models.OrderCancelled)

	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, order.Status)
}

func TestReserveStock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/inventory/product/7/reserve", r.URL.Path)
		require.Equal(t, "3", r.URL.Query().Get("quantity"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Inventory{ID: 1, ProductID: 7, QuantityAvailable: 5, QuantityReserved: 3})
	}))
	defer srv.Close()

	ic := NewInventoryClient(NewClient("inventory", srv.URL, srv.Client(), nil))

	inv, err := ic.ReserveStock(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, inv.QuantityReserved)
}

func TestDeleteReturnsNoError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	uc := NewUserClient(NewClient("users", srv.URL, srv.Client(), nil))

	assert.NoError(t, uc.DeleteAddress(context.Background(), 7))
}
