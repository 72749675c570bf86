package catalog

// Size is one priced size tier of a product. PriceDelta is signed,
// relative to the product's base price.
type Size struct {
	Name       string `json:"name"`
	PriceDelta int64  `json:"price"`
}

// Topping is one optional add-on of a product
type Topping struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceDelta int64  `json:"price"`
}

// Product is the canonical catalog entity. Instances always come out of
// Normalize, so sizes are non-empty and unique by name, toppings unique
// by id, and every numeric field holds a real number.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CategoryID   string    `json:"category"`
	CategoryName string    `json:"categoryName"`
	BasePrice    int64     `json:"price"`
	Image        string    `json:"image"`
	Rating       float64   `json:"rating"`
	ReviewCount  int64     `json:"reviews"`
	Sizes        []Size    `json:"sizes"`
	Toppings     []Topping `json:"toppings"`
	IsNew        bool      `json:"isNew"`
	IsBestSeller bool      `json:"isBestSeller"`
}

// Category is a catalog grouping with a product count
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Count int    `json:"count"`
}

// SizeByName returns the product size with the given name, if present
func (p Product) SizeByName(name string) (Size, bool) {
	for _, size := range p.Sizes {
		if size.Name == name {
			return size, true
		}
	}
	return Size{}, false
}

// ToppingByID returns the product topping with the given id, if present
func (p Product) ToppingByID(id string) (Topping, bool) {
	for _, topping := range p.Toppings {
		if topping.ID == id {
			return topping, true
		}
	}
	return Topping{}, false
}
