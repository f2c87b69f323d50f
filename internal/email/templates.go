package email

import (
	"fmt"
	"strings"

	"github.com/example/secureshop/internal/cart"
)

// buildHTML renders the notification body for rich email clients.
func buildHTML(orderID string, items []OrderItem, totals cart.Totals, contactMethod, contactInfo, timestamp, privacyNotice string) string {
	var rows strings.Builder
	for _, item := range items {
		rows.WriteString(fmt.Sprintf(
			`<tr>
				<td style="padding: 10px; border-bottom: 1px solid #1a4a5c;">%s</td>
				<td style="padding: 10px; border-bottom: 1px solid #1a4a5c;">&times;%d</td>
				<td style="padding: 10px; border-bottom: 1px solid #1a4a5c;">$%s</td>
				<td style="padding: 10px; border-bottom: 1px solid #1a4a5c;">%s XMR</td>
			</tr>`,
			item.Name,
			item.Quantity,
			item.SubtotalUsd(),
			item.SubtotalXmr(),
		))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
</head>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 20px;">
	<div style="max-width: 600px; margin: 0 auto; background-color: #032b44; color: #ffffff; border-radius: 8px; overflow: hidden;">
		<div style="background-color: #00b7eb; color: #032b44; padding: 20px; text-align: center;">
			<h1 style="margin: 0;">New SecureShop Order</h1>
			<p style="margin: 5px 0 0 0;">Order ID: %s</p>
		</div>

		<div style="padding: 20px;">
			<div style="background-color: #0a3a52; padding: 15px; border-radius: 6px; margin: 15px 0;">
				<h3 style="margin-top: 0;">Order Information</h3>
				<p><strong>Order ID:</strong> %s</p>
				<p><strong>Timestamp:</strong> %s</p>
				<p><strong>Contact Method:</strong> %s</p>
				<p><strong>Customer Contact:</strong> %s</p>
			</div>

			<h3>Items Ordered</h3>
			<table style="width: 100%%; border-collapse: collapse; margin: 15px 0;">
				<thead>
					<tr style="background-color: #1a4a5c;">
						<th style="padding: 10px; text-align: left;">Product</th>
						<th style="padding: 10px; text-align: left;">Quantity</th>
						<th style="padding: 10px; text-align: left;">USD Total</th>
						<th style="padding: 10px; text-align: left;">XMR Total</th>
					</tr>
				</thead>
				<tbody>
					%s
				</tbody>
			</table>

			<div style="font-weight: bold; color: #00b7eb; font-size: 1.2em;">
				<p>Total: $%s USD (%s XMR)</p>
			</div>

			<div style="background-color: #1a4a5c; padding: 15px; border-radius: 4px; margin: 15px 0;">
				<h3 style="margin-top: 0;">Next Steps</h3>
				<ol>
					<li>Monitor the Monero address for payment</li>
					<li>After 3 confirmations, deliver products to the customer's contact method</li>
					<li>Delete customer contact information after successful delivery</li>
				</ol>
			</div>

			<div style="background-color: #d32f2f; padding: 15px; margin: 20px 0; border-radius: 4px;">
				<strong>Privacy Notice:</strong> %s
			</div>
		</div>
	</div>
</body>
</html>`,
		orderID, orderID, timestamp, contactMethod, contactInfo,
		rows.String(), totals.TotalUsd, totals.TotalXmr, privacyNotice)
}

// buildText renders the plain-text body used for simulation logging and
// plain-text mail clients.
func buildText(orderID string, items []OrderItem, totals cart.Totals, contactMethod, contactInfo, timestamp string) string {
	var lines strings.Builder
	for _, item := range items {
		lines.WriteString(fmt.Sprintf("- %s (x%d) - $%s USD\n", item.Name, item.Quantity, item.SubtotalUsd()))
	}

	return strings.TrimSpace(fmt.Sprintf(`NEW SECURESHOP ORDER

Order ID: %s
Timestamp: %s
Contact Method: %s
Customer Contact: %s

ITEMS ORDERED:
%s
TOTAL: $%s USD (%s XMR)

NEXT STEPS:
1. Monitor Monero address for payment
2. After 3 confirmations, deliver products to customer
3. Delete customer contact info after delivery

PRIVACY: Delete this email after processing to protect customer privacy.`,
		orderID, timestamp, contactMethod, contactInfo,
		lines.String(), totals.TotalUsd, totals.TotalXmr))
}
