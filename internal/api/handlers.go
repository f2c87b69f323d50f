package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/example/secureshop/internal/cart"
	"github.com/example/secureshop/internal/catalog"
	"github.com/example/secureshop/internal/checkout"
)

type Handlers struct {
	carts    *cart.Manager
	checkout *checkout.Service
}

func NewHandlers(carts *cart.Manager, checkoutSvc *checkout.Service) *Handlers {
	return &Handlers{
		carts:    carts,
		checkout: checkoutSvc,
	}
}

// Product Handlers

func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.All())
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	product, ok := catalog.Find(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Cart Handlers

type cartView struct {
	Items  []cart.Item `json:"items"`
	Totals cart.Totals `json:"totals"`
}

func (h *Handlers) viewCart(r *http.Request, key string) cartView {
	items := h.carts.Items(r.Context(), key)
	return cartView{
		Items:  items,
		Totals: cart.ComputeTotals(items),
	}
}

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	key := sessionKey(w, r)
	respondJSON(w, http.StatusOK, h.viewCart(r, key))
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	key := sessionKey(w, r)

	var req struct {
		ProductID int `json:"productId"`
		Quantity  int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if !h.carts.Add(r.Context(), key, req.ProductID, req.Quantity) {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}
	respondJSON(w, http.StatusOK, h.viewCart(r, key))
}

func (h *Handlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	key := sessionKey(w, r)

	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	h.carts.SetQuantity(r.Context(), key, productID, req.Quantity)
	respondJSON(w, http.StatusOK, h.viewCart(r, key))
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	key := sessionKey(w, r)

	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	h.carts.Remove(r.Context(), key, productID)
	respondJSON(w, http.StatusOK, h.viewCart(r, key))
}

func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	key := sessionKey(w, r)
	h.carts.Clear(r.Context(), key)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
}

// Checkout Handler

func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	key := sessionKey(w, r)

	var req checkout.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	result, err := h.checkout.Submit(r.Context(), key, req)
	if err != nil {
		if checkout.IsValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[API] Checkout failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Checkout failed")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[API] Error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
