// Package notification implements the owner-notification HTTP endpoint: it
// accepts an order, renders the email and sends it through the provider,
// simulating delivery when the provider is unavailable.
package notification

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/example/secureshop/internal/cart"
	"github.com/example/secureshop/internal/config"
	"github.com/example/secureshop/internal/email"
)

// Handler serves POST /send-order-email.
type Handler struct {
	cfg    config.Config
	sender *email.Service
}

func NewHandler(cfg config.Config, sender *email.Service) *Handler {
	return &Handler{cfg: cfg, sender: sender}
}

type orderTotals struct {
	TotalUsd string `json:"totalUsd"`
	TotalXmr string `json:"totalXmr"`
}

type orderRequest struct {
	OrderID       string            `json:"orderId"`
	CartItems     []email.OrderItem `json:"cartItems"`
	Totals        *orderTotals      `json:"totals"`
	ContactMethod string            `json:"contactMethod"`
	ContactInfo   string            `json:"contactInfo"`
}

// SendOrderEmail handles the notification request. Invalid JSON or missing
// required fields produce a 400; otherwise the response is always 200 with
// success=false when delivery fell back to simulation.
func (h *Handler) SendOrderEmail(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[Notifier] Error parsing request: %v", err)
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON data"})
		return
	}

	if req.OrderID == "" || req.Totals == nil || req.CartItems == nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required order data"})
		return
	}

	totals := cart.Totals{
		TotalUsd: req.Totals.TotalUsd,
		TotalXmr: req.Totals.TotalXmr,
	}
	for _, item := range req.CartItems {
		totals.ItemCount += item.Quantity
	}

	payload := email.BuildOrderNotification(h.cfg, req.OrderID, req.CartItems, totals, req.ContactMethod, req.ContactInfo, time.Now())

	if err := h.sender.Send(r.Context(), payload); err != nil {
		log.Printf("[Notifier] Provider send failed for order %s: %v", req.OrderID, err)
		email.Simulate(payload)
		respondJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "Email simulation completed",
		})
		return
	}

	log.Printf("[Notifier] Order notification email sent for order %s", req.OrderID)
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Email sent successfully",
	})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[Notifier] Error encoding response: %v", err)
	}
}
