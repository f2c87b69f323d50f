package email

import (
	"strings"
	"time"

	"github.com/example/secureshop/internal/cart"
	"github.com/example/secureshop/internal/config"
)

// BuildOrderNotification renders the owner notification for one order. The
// result is deterministic given its inputs; the caller supplies the
// timestamp.
func BuildOrderNotification(cfg config.Config, orderID string, items []OrderItem, totals cart.Totals, contactMethod, contactInfo string, now time.Time) Payload {
	timestamp := now.UTC().Format(time.RFC3339)
	subject := strings.ReplaceAll(cfg.SubjectTemplate, "{ORDER_ID}", orderID)

	return Payload{
		To: cfg.OwnerEmail,
		From: Address{
			Email: cfg.FromEmail,
			Name:  cfg.FromName,
		},
		ReplyTo: cfg.ReplyTo,
		Subject: subject,
		HTML:    buildHTML(orderID, items, totals, contactMethod, contactInfo, timestamp, cfg.PrivacyNotice),
		Text:    buildText(orderID, items, totals, contactMethod, contactInfo, timestamp),
	}
}
