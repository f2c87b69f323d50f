package notification

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/secureshop/internal/config"
	"github.com/example/secureshop/internal/email"
)

func newTestRouter() http.Handler {
	// No API key: every accepted order falls back to simulation.
	return NewRouter(NewHandler(config.Defaults(), email.NewService("")))
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"orderId": "SS-A1B2C3D4",
	"cartItems": [
		{"name": "Ultimate Privacy Guide", "quantity": 2, "priceUsd": 25.00, "priceXmr": 0.15}
	],
	"totals": {"totalUsd": "50.00", "totalXmr": "0.300"},
	"contactMethod": "email",
	"contactInfo": "x@y.com"
}`

func TestSendOrderEmail_SimulationFallback(t *testing.T) {
	rec := doRequest(t, newTestRouter(), http.MethodPost, "/send-order-email", validBody)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Email simulation completed", resp.Message)
}

func TestSendOrderEmail_InvalidJSON(t *testing.T) {
	rec := doRequest(t, newTestRouter(), http.MethodPost, "/send-order-email", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid JSON data", resp["error"])
}

func TestSendOrderEmail_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing orderId", `{"cartItems": [], "totals": {"totalUsd": "1.00", "totalXmr": "0.010"}}`},
		{"missing totals", `{"orderId": "SS-A1B2C3D4", "cartItems": []}`},
		{"missing cartItems", `{"orderId": "SS-A1B2C3D4", "totals": {"totalUsd": "1.00", "totalXmr": "0.010"}}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, newTestRouter(), http.MethodPost, "/send-order-email", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "Missing required order data", resp["error"])
		})
	}
}

func TestSendOrderEmail_Preflight(t *testing.T) {
	rec := doRequest(t, newTestRouter(), http.MethodOptions, "/send-order-email", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestSendOrderEmail_CORSOnPost(t *testing.T) {
	rec := doRequest(t, newTestRouter(), http.MethodPost, "/send-order-email", validBody)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSendOrderEmail_MethodNotAllowed(t *testing.T) {
	rec := doRequest(t, newTestRouter(), http.MethodGet, "/send-order-email", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Method not allowed", resp["error"])
}

func TestSendOrderEmail_UnknownPath(t *testing.T) {
	rec := doRequest(t, newTestRouter(), http.MethodPost, "/other", "{}")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Endpoint not found", resp["error"])
}
