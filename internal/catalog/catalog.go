// Package catalog holds the fixed product list. Products are defined at
// compile time and never change while the process runs.
package catalog

import "github.com/shopspring/decimal"

// Product is a purchasable catalog entry. Prices are kept in both USD and
// XMR because the storefront quotes both.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	PriceUsd    decimal.Decimal `json:"priceUsd"`
	PriceXmr    decimal.Decimal `json:"priceXmr"`
}

var products = []Product{
	{
		ID:          1,
		Name:        "Ultimate Privacy Guide",
		Description: "Comprehensive 200-page guide covering advanced anonymity techniques, secure communications, and digital privacy protection strategies.",
		PriceUsd:    decimal.RequireFromString("25.00"),
		PriceXmr:    decimal.RequireFromString("0.15"),
	},
	{
		ID:          2,
		Name:        "Secure Communication Toolkit",
		Description: "Software package including encrypted messaging tools, secure email clients, and voice communication applications.",
		PriceUsd:    decimal.RequireFromString("35.00"),
		PriceXmr:    decimal.RequireFromString("0.21"),
	},
	{
		ID:          3,
		Name:        "Anonymous Web Browsing Course",
		Description: "Video course series teaching advanced techniques for anonymous web browsing, including Tor usage and operational security.",
		PriceUsd:    decimal.RequireFromString("20.00"),
		PriceXmr:    decimal.RequireFromString("0.12"),
	},
	{
		ID:          4,
		Name:        "Cryptocurrency Privacy Manual",
		Description: "Detailed guide on using cryptocurrencies privately, including mixing services, privacy coins, and transaction anonymization.",
		PriceUsd:    decimal.RequireFromString("30.00"),
		PriceXmr:    decimal.RequireFromString("0.18"),
	},
	{
		ID:          5,
		Name:        "Digital Forensics Protection Suite",
		Description: "Software tools and guides for protecting against digital forensics, including secure deletion and anti-analysis techniques.",
		PriceUsd:    decimal.RequireFromString("45.00"),
		PriceXmr:    decimal.RequireFromString("0.27"),
	},
	{
		ID:          6,
		Name:        "Operational Security Handbook",
		Description: "Comprehensive OPSEC manual covering threat modeling, secure communications, and maintaining anonymity in digital operations.",
		PriceUsd:    decimal.RequireFromString("40.00"),
		PriceXmr:    decimal.RequireFromString("0.24"),
	},
}

// All returns every product in catalog order.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Find looks up a product by id.
func Find(id int) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
