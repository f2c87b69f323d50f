// Package checkout validates a submission, builds the order notification and
// runs the delivery chain. Orders are ephemeral: nothing here stores them.
package checkout

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/example/secureshop/internal/cart"
	"github.com/example/secureshop/internal/config"
	"github.com/example/secureshop/internal/dispatch"
	"github.com/example/secureshop/internal/email"
	"github.com/example/secureshop/internal/metrics"
	"github.com/example/secureshop/internal/validate"
)

// Contact methods with a dedicated shape check. Other non-empty methods are
// accepted as-is.
const (
	MethodEmail      = "email"
	MethodXMRAddress = "xmr-address"
)

// Validation errors. Each one blocks submission with a specific user-visible
// message; none are logged as system errors.
var (
	ErrNoContactMethod      = errors.New("please select a contact method")
	ErrNoContactInfo        = errors.New("please provide contact information")
	ErrTermsNotAccepted     = errors.New("please accept the terms to continue")
	ErrInvalidEmail         = errors.New("please provide a valid email address")
	ErrInvalidMoneroAddress = errors.New("please provide a valid Monero address")
	ErrEmptyCart            = errors.New("your cart is empty")
)

var validationErrors = []error{
	ErrNoContactMethod,
	ErrNoContactInfo,
	ErrTermsNotAccepted,
	ErrInvalidEmail,
	ErrInvalidMoneroAddress,
	ErrEmptyCart,
}

// IsValidationError reports whether err is a user-input error rather than a
// system failure.
func IsValidationError(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// Request is a checkout submission.
type Request struct {
	ContactMethod string `json:"contactMethod"`
	ContactInfo   string `json:"contactInfo"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// Result is the confirmation returned for a completed submission.
type Result struct {
	OrderID     string      `json:"orderId"`
	Totals      cart.Totals `json:"totals"`
	NotifiedVia string      `json:"notifiedVia"`
	Warning     string      `json:"warning,omitempty"`
}

// Service runs the checkout transaction: validate, build payload, dispatch,
// clear cart.
type Service struct {
	cfg        config.Config
	carts      *cart.Manager
	dispatcher *dispatch.Dispatcher
}

func NewService(cfg config.Config, carts *cart.Manager, dispatcher *dispatch.Dispatcher) *Service {
	return &Service{
		cfg:        cfg,
		carts:      carts,
		dispatcher: dispatcher,
	}
}

// ValidateContact gates a submission on its contact fields. The contact info
// is sanitized before shape checks, matching how it is later rendered.
func ValidateContact(req Request) (string, error) {
	if req.ContactMethod == "" {
		return "", ErrNoContactMethod
	}
	info := validate.SanitizeText(strings.TrimSpace(req.ContactInfo))
	if info == "" {
		return "", ErrNoContactInfo
	}
	if !req.TermsAccepted {
		return "", ErrTermsNotAccepted
	}
	switch req.ContactMethod {
	case MethodEmail:
		if !validate.IsValidEmail(info) {
			return "", ErrInvalidEmail
		}
	case MethodXMRAddress:
		if !validate.IsValidMoneroAddress(info) {
			return "", ErrInvalidMoneroAddress
		}
	}
	return info, nil
}

// Submit completes a checkout for the given cart. On validation failure the
// cart is untouched and no order exists. Otherwise the dispatch chain runs to
// completion and the cart is cleared; the simulation tier guarantees the
// submission itself never fails on notification infrastructure.
func (s *Service) Submit(ctx context.Context, cartKey string, req Request) (Result, error) {
	contactInfo, err := ValidateContact(req)
	if err != nil {
		return Result{}, err
	}

	items := s.carts.Items(ctx, cartKey)
	if len(items) == 0 {
		return Result{}, ErrEmptyCart
	}
	totals := cart.ComputeTotals(items)

	orderID := NewOrderID()
	orderItems := make([]email.OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = email.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			PriceUsd: item.PriceUsd,
			PriceXmr: item.PriceXmr,
		}
	}

	payload := email.BuildOrderNotification(s.cfg, orderID, orderItems, totals, req.ContactMethod, contactInfo, time.Now())
	order := dispatch.Order{
		OrderID:       orderID,
		CartItems:     orderItems,
		Totals:        totals,
		ContactMethod: req.ContactMethod,
		ContactInfo:   contactInfo,
	}

	tier, err := s.dispatcher.Send(ctx, order, payload)
	if err != nil {
		// Unreachable with the simulation tier configured; the submission
		// still completes.
		log.Printf("[Checkout] Notification for order %s could not be delivered: %v", orderID, err)
		tier = "none"
	}

	s.carts.Clear(ctx, cartKey)
	metrics.OrdersSubmitted.Inc()

	result := Result{
		OrderID:     orderID,
		Totals:      totals,
		NotifiedVia: tier,
	}
	if tier != dispatch.TierRemote && tier != dispatch.TierProvider {
		result.Warning = "order recorded, but the owner notification used a fallback path"
	}
	return result, nil
}

const orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewOrderID generates a customer-facing order id of the form
// SS-XXXXXXXX (8 uppercase alphanumerics).
func NewOrderID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	id := make([]byte, 0, 11)
	id = append(id, 'S', 'S', '-')
	for _, b := range buf {
		id = append(id, orderIDAlphabet[int(b)%len(orderIDAlphabet)])
	}
	return string(id)
}
