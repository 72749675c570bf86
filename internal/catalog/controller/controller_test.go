package controller

import (
	"testing"

	"github.com/drinkshop/backend/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestProductViewBadge(t *testing.T) {
	tests := []struct {
		name          string
		isNew         bool
		isBestSeller  bool
		expectedBadge string
	}{
		{"plain product has no badge", false, false, ""},
		{"best seller", false, true, "best-seller"},
		{"new product", true, false, "new"},
		{"new wins over best seller", true, true, "new"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := newProductView(catalog.Product{
				Name:         "Trà sữa",
				BasePrice:    45000,
				IsNew:        tt.isNew,
				IsBestSeller: tt.isBestSeller,
			})
			assert.Equal(t, tt.expectedBadge, view.Badge)
		})
	}
}

func TestProductViewDisplayPrice(t *testing.T) {
	view := newProductView(catalog.Product{BasePrice: 45000})
	assert.Equal(t, "45.000 ₫", view.DisplayPrice)
}
