package catalog

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// DefaultToppingPrice is applied to toppings authored as bare name strings
	DefaultToppingPrice int64 = 5000

	// PlaceholderImageURL is substituted for products stored without an image
	PlaceholderImageURL = "https://placehold.co/400x400?text=DrinkShop"
)

// sizeDefaultDeltas maps the standard size names to their canonical
// surcharges. A stored size with a literal zero delta and one of these
// names takes the table value, so authors can write {name:"L"} and still
// get the canonical +10000. An explicit zero on any other name stands.
var sizeDefaultDeltas = map[string]int64{
	"S": -5000,
	"M": 0,
	"L": 10000,
}

// DefaultSizes returns the three-tier size sequence synthesized for
// products stored without sizes.
func DefaultSizes() []Size {
	return []Size{
		{Name: "S", PriceDelta: -5000},
		{Name: "M", PriceDelta: 0},
		{Name: "L", PriceDelta: 10000},
	}
}

// SizeDeltaFallback resolves a size name against the fixed default table,
// returning 0 for unknown names.
func SizeDeltaFallback(name string) int64 {
	return sizeDefaultDeltas[name]
}

// Normalize converts a raw stored product record into the canonical
// Product shape. It never fails: every field has a defined coercion, and
// malformed input degrades to defaults rather than errors.
func Normalize(raw map[string]interface{}) Product {
	product := Product{
		ID:           coerceID(raw["id"]),
		Name:         coerceString(raw["name"]),
		Description:  coerceString(raw["description"]),
		CategoryID:   coerceString(raw["category"]),
		CategoryName: coerceString(raw["categoryName"]),
		BasePrice:    coerceInt64(raw["price"]),
		Image:        coerceString(raw["image"]),
		Rating:       coerceFloat64(raw["rating"]),
		ReviewCount:  coerceInt64(raw["reviews"]),
		IsNew:        coerceBool(raw["isNew"]),
		IsBestSeller: coerceBool(raw["isBestSeller"]),
	}
	if product.Image == "" {
		product.Image = PlaceholderImageURL
	}
	if product.ReviewCount < 0 {
		product.ReviewCount = 0
	}
	product.Sizes = normalizeSizes(raw["sizes"])
	product.Toppings = normalizeToppings(raw["toppings"])
	return product
}

func normalizeSizes(raw interface{}) []Size {
	entries, ok := raw.([]interface{})
	if !ok {
		return DefaultSizes()
	}

	sizes := make([]Size, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		var size Size
		switch v := entry.(type) {
		case string:
			size = Size{Name: v, PriceDelta: sizeDefaultDeltas[v]}
		case map[string]interface{}:
			size = Size{Name: coerceString(v["name"]), PriceDelta: coerceInt64(v["price"])}
			// literal zero on a standard name means "use the canonical surcharge"
			if size.PriceDelta == 0 {
				if delta, known := sizeDefaultDeltas[size.Name]; known {
					size.PriceDelta = delta
				}
			}
		default:
			continue
		}
		if size.Name == "" || seen[size.Name] {
			continue
		}
		seen[size.Name] = true
		sizes = append(sizes, size)
	}

	if len(sizes) == 0 {
		return DefaultSizes()
	}
	return sizes
}

func normalizeToppings(raw interface{}) []Topping {
	entries, ok := raw.([]interface{})
	if !ok {
		return []Topping{}
	}

	toppings := make([]Topping, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for i, entry := range entries {
		var topping Topping
		switch v := entry.(type) {
		case string:
			if v == "" {
				continue
			}
			topping = Topping{
				ID:         "t-" + strconv.Itoa(i),
				Name:       v,
				PriceDelta: DefaultToppingPrice,
			}
		case map[string]interface{}:
			topping = Topping{
				ID:         coerceID(v["id"]),
				Name:       coerceString(v["name"]),
				PriceDelta: coerceInt64(v["price"]),
			}
			if topping.ID == "" {
				topping.ID = "topping-" + strconv.Itoa(i)
			}
		default:
			continue
		}
		if seen[topping.ID] {
			// stored duplicate ids still must come out unique, including
			// when the stored id collides with a synthesized one
			base := "topping-" + strconv.Itoa(i)
			topping.ID = base
			for n := 1; seen[topping.ID]; n++ {
				topping.ID = base + "-" + strconv.Itoa(n)
			}
		}
		seen[topping.ID] = true
		toppings = append(toppings, topping)
	}
	return toppings
}

// coerceID renders a stored identifier as an opaque string. Whole numeric
// ids keep their integer form ("1", not "1.000000").
func coerceID(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

func coerceString(value interface{}) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return s
}

// coerceInt64 applies Number(x)||0 semantics: anything that is not a
// usable number becomes 0.
func coerceInt64(value interface{}) int64 {
	return int64(coerceFloat64(value))
}

func coerceFloat64(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0
		}
		return parsed
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func coerceBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	case float64:
		return v != 0
	default:
		return false
	}
}
