package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMissingSizesSynthesizesDefaults(t *testing.T) {
	product := Normalize(map[string]interface{}{
		"id":    "p1",
		"name":  "Trà Sữa Trân Châu",
		"price": float64(45000),
	})

	require.Len(t, product.Sizes, 3)
	assert.Equal(t, []Size{
		{Name: "S", PriceDelta: -5000},
		{Name: "M", PriceDelta: 0},
		{Name: "L", PriceDelta: 10000},
	}, product.Sizes)
}

func TestNormalizeSizeZeroDeltaTableOverride(t *testing.T) {
	tests := []struct {
		name     string
		size     map[string]interface{}
		expected int64
	}{
		{"L with zero delta takes table surcharge", map[string]interface{}{"name": "L", "price": float64(0)}, 10000},
		{"S with zero delta takes table discount", map[string]interface{}{"name": "S"}, -5000},
		{"M stays zero", map[string]interface{}{"name": "M", "price": float64(0)}, 0},
		{"non-standard name keeps explicit zero", map[string]interface{}{"name": "XL", "price": float64(0)}, 0},
		{"explicit non-zero delta passes through", map[string]interface{}{"name": "L", "price": float64(7000)}, 7000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := Normalize(map[string]interface{}{
				"sizes": []interface{}{tt.size},
			})
			require.Len(t, product.Sizes, 1)
			assert.Equal(t, tt.expected, product.Sizes[0].PriceDelta)
		})
	}
}

func TestNormalizeBareStringToppings(t *testing.T) {
	product := Normalize(map[string]interface{}{
		"toppings": []interface{}{"Trân châu đen", "Pudding"},
	})

	require.Len(t, product.Toppings, 2)
	assert.Equal(t, Topping{ID: "t-0", Name: "Trân châu đen", PriceDelta: DefaultToppingPrice}, product.Toppings[0])
	assert.Equal(t, Topping{ID: "t-1", Name: "Pudding", PriceDelta: DefaultToppingPrice}, product.Toppings[1])
}

func TestNormalizeObjectToppings(t *testing.T) {
	product := Normalize(map[string]interface{}{
		"toppings": []interface{}{
			map[string]interface{}{"id": float64(3), "name": "Thạch dừa", "price": float64(6000)},
			map[string]interface{}{"name": "Kem tươi", "price": "10000"},
			map[string]interface{}{"id": float64(3), "name": "Thạch dừa nữa", "price": float64(6000)},
		},
	})

	require.Len(t, product.Toppings, 3)
	assert.Equal(t, "3", product.Toppings[0].ID)
	assert.Equal(t, int64(6000), product.Toppings[0].PriceDelta)
	assert.Equal(t, "topping-1", product.Toppings[1].ID, "missing id is synthesized from position")
	assert.Equal(t, int64(10000), product.Toppings[1].PriceDelta, "string prices coerce to numbers")
	assert.Equal(t, "topping-2", product.Toppings[2].ID, "duplicate ids are re-synthesized")
}

func TestNormalizeToppingIDsUniqueDespiteSynthesizedCollision(t *testing.T) {
	// a stored id occupying the positional slot an id-less topping would
	// synthesize into must not yield two identical ids
	product := Normalize(map[string]interface{}{
		"toppings": []interface{}{
			map[string]interface{}{"id": "topping-1", "name": "Trân châu trắng"},
			map[string]interface{}{"name": "Phô mai viên"},
		},
	})

	require.Len(t, product.Toppings, 2)
	ids := map[string]bool{}
	for _, topping := range product.Toppings {
		assert.False(t, ids[topping.ID], "topping id %q assigned twice", topping.ID)
		ids[topping.ID] = true
	}
	assert.Equal(t, "topping-1", product.Toppings[0].ID)
	assert.Equal(t, "topping-1-1", product.Toppings[1].ID)
}

func TestNormalizeCoercion(t *testing.T) {
	product := Normalize(map[string]interface{}{
		"id":      float64(12),
		"price":   "not a number",
		"rating":  nil,
		"reviews": float64(-3),
		"isNew":   true,
	})

	assert.Equal(t, "12", product.ID)
	assert.Equal(t, int64(0), product.BasePrice)
	assert.Equal(t, float64(0), product.Rating)
	assert.Equal(t, int64(0), product.ReviewCount)
	assert.True(t, product.IsNew)
	assert.False(t, product.IsBestSeller)
	assert.Equal(t, PlaceholderImageURL, product.Image)
	assert.NotEmpty(t, product.Sizes)
	assert.NotNil(t, product.Toppings)
}

func TestNormalizeSizesNotAnArray(t *testing.T) {
	product := Normalize(map[string]interface{}{"sizes": "oops"})
	assert.Equal(t, DefaultSizes(), product.Sizes)
}

func TestNormalizeDuplicateSizeNamesKeepFirst(t *testing.T) {
	product := Normalize(map[string]interface{}{
		"sizes": []interface{}{
			map[string]interface{}{"name": "L", "price": float64(8000)},
			map[string]interface{}{"name": "L", "price": float64(9000)},
		},
	})
	require.Len(t, product.Sizes, 1)
	assert.Equal(t, int64(8000), product.Sizes[0].PriceDelta)
}
