package pricing

import (
	"github.com/drinkshop/backend/internal/catalog"
)

// SizeDelta resolves the price adjustment for a size name: the product's
// own size list wins, then the fixed default table, then 0 for unknown
// names.
func SizeDelta(product catalog.Product, sizeName string) int64 {
	if size, ok := product.SizeByName(sizeName); ok {
		return size.PriceDelta
	}
	return catalog.SizeDeltaFallback(sizeName)
}

// UnitPrice computes the price of one unit of the given configuration.
// Unknown topping ids contribute nothing. No negative floor is applied:
// a configuration can legitimately total to zero or below.
func UnitPrice(product catalog.Product, sizeName string, toppingIDs []string) int64 {
	price := product.BasePrice + SizeDelta(product, sizeName)
	for _, id := range toppingIDs {
		if topping, ok := product.ToppingByID(id); ok {
			price += topping.PriceDelta
		}
	}
	return price
}

// Price computes the line total for quantity units of the configuration
func Price(product catalog.Product, sizeName string, toppingIDs []string, quantity int64) int64 {
	return UnitPrice(product, sizeName, toppingIDs) * quantity
}
