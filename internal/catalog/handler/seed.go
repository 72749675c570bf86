package handler

// defaultMenu returns the raw product records used to bootstrap an empty
// catalog. Records are stored in the loose document shape; readers always go
// through catalog.Normalize.
func defaultMenu() []map[string]interface{} {
	sizes := []interface{}{
		map[string]interface{}{"name": "S", "price": -5000},
		map[string]interface{}{"name": "M", "price": 0},
		map[string]interface{}{"name": "L", "price": 10000},
	}
	milkTeaToppings := []interface{}{
		map[string]interface{}{"id": "tran-chau-den", "name": "Trân châu đen", "price": 5000},
		map[string]interface{}{"id": "tran-chau-trang", "name": "Trân châu trắng", "price": 7000},
		map[string]interface{}{"id": "pudding-trung", "name": "Pudding trứng", "price": 10000},
	}
	coffeeToppings := []interface{}{
		map[string]interface{}{"id": "shot-espresso", "name": "Thêm shot espresso", "price": 10000},
		map[string]interface{}{"id": "kem-muoi", "name": "Kem muối", "price": 8000},
	}
	fruitToppings := []interface{}{
		map[string]interface{}{"id": "thach-dua", "name": "Thạch dừa", "price": 5000},
		map[string]interface{}{"id": "hat-chia", "name": "Hạt chia", "price": 5000},
	}

	return []map[string]interface{}{
		{
			"name": "Trà sữa trân châu đường đen", "price": 45000,
			"category": "milk-tea", "categoryName": "Trà sữa",
			"description": "Trà sữa đậm vị kết hợp trân châu đường đen dẻo thơm",
			"image":       "https://images.unsplash.com/photo-1558857563-b371033873b8?w=400",
			"rating":      4.8, "reviews": 256, "isBestSeller": true, "isNew": false,
			"sizes": sizes, "toppings": milkTeaToppings,
		},
		{
			"name": "Trà sữa matcha", "price": 50000,
			"category": "milk-tea", "categoryName": "Trà sữa",
			"description": "Matcha Nhật Bản nguyên chất hòa quyện sữa tươi",
			"image":       "https://images.unsplash.com/photo-1515823064-d6e0c04616a7?w=400",
			"rating":      4.6, "reviews": 189, "isBestSeller": true, "isNew": false,
			"sizes": sizes, "toppings": milkTeaToppings,
		},
		{
			"name": "Cà phê sữa đá", "price": 35000,
			"category": "coffee", "categoryName": "Cà phê",
			"description": "Cà phê phin truyền thống pha cùng sữa đặc",
			"image":       "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=400",
			"rating":      4.9, "reviews": 412, "isBestSeller": true, "isNew": false,
			"sizes": sizes, "toppings": coffeeToppings,
		},
		{
			"name": "Bạc xỉu", "price": 38000,
			"category": "coffee", "categoryName": "Cà phê",
			"description": "Sữa nóng điểm chút cà phê, vị ngọt dịu",
			"image":       "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=400",
			"rating":      4.5, "reviews": 167, "isBestSeller": false, "isNew": false,
			"sizes": sizes, "toppings": coffeeToppings,
		},
		{
			"name": "Trà đào cam sả", "price": 42000,
			"category": "fruit-tea", "categoryName": "Trà trái cây",
			"description": "Trà đào thơm mát cùng cam tươi và sả",
			"image":       "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=400",
			"rating":      4.7, "reviews": 298, "isBestSeller": true, "isNew": false,
			"sizes": sizes, "toppings": fruitToppings,
		},
		{
			"name": "Trà vải", "price": 40000,
			"category": "fruit-tea", "categoryName": "Trà trái cây",
			"description": "Trà lài kết hợp vải thiều ngọt thanh",
			"image":       "https://images.unsplash.com/photo-1499638673689-79a0b5115d87?w=400",
			"rating":      4.4, "reviews": 87, "isBestSeller": false, "isNew": true,
			"sizes": sizes, "toppings": fruitToppings,
		},
		{
			"name": "Sinh tố bơ", "price": 48000,
			"category": "smoothie", "categoryName": "Sinh tố",
			"description": "Bơ sáp xay cùng sữa đặc, béo mịn",
			"image":       "https://images.unsplash.com/photo-1623065422902-30a2d299bbe4?w=400",
			"rating":      4.6, "reviews": 134, "isBestSeller": false, "isNew": true,
			"sizes": sizes, "toppings": fruitToppings,
		},
		{
			"name": "Sinh tố xoài", "price": 45000,
			"category": "smoothie", "categoryName": "Sinh tố",
			"description": "Xoài cát chín xay nhuyễn, không pha thêm đường",
			"image":       "https://images.unsplash.com/photo-1546173159-315724a31696?w=400",
			"rating":      4.3, "reviews": 76, "isBestSeller": false, "isNew": true,
			"sizes": sizes, "toppings": fruitToppings,
		},
	}
}
