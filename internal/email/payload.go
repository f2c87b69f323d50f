// Package email builds and sends the owner-facing order notification.
package email

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers on the wire, matching the storefront
	// order format.
	decimal.MarshalJSONWithoutQuotes = true
}

// Address is a sender identity.
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Payload is a fully rendered notification: addressing plus HTML and plain
// text bodies. It is derived deterministically from the order data and never
// stored.
type Payload struct {
	To      string  `json:"to"`
	From    Address `json:"from"`
	ReplyTo string  `json:"replyTo,omitempty"`
	Subject string  `json:"subject"`
	HTML    string  `json:"html"`
	Text    string  `json:"text"`
}

// OrderItem is one ordered line as it appears in the notification and in the
// order wire format.
type OrderItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	PriceUsd decimal.Decimal `json:"priceUsd"`
	PriceXmr decimal.Decimal `json:"priceXmr"`
}

// SubtotalUsd is the per-line USD amount, 2 fraction digits.
func (i OrderItem) SubtotalUsd() string {
	return i.PriceUsd.Mul(decimal.NewFromInt(int64(i.Quantity))).StringFixed(2)
}

// SubtotalXmr is the per-line XMR amount, 3 fraction digits.
func (i OrderItem) SubtotalXmr() string {
	return i.PriceXmr.Mul(decimal.NewFromInt(int64(i.Quantity))).StringFixed(3)
}
