package models

// Product represents a catalog item
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`

	// PriceCents mirrors Price in minor units for arithmetic
	PriceCents int64 `json:"-"`
}

// Catalog returns the fixed, read-only product catalog in display order.
// A fresh slice is returned on every call so callers cannot mutate the source.
func Catalog() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Sauce Labs Backpack",
			Price:       "29.99",
			Description: "Backpack",
			ImageURL:    "/img/sauce-backpack.jpg",
			PriceCents:  2999,
		},
		{
			ID:          "2",
			Name:        "Sauce Labs Bike Light",
			Price:       "9.99",
			Description: "Bike Light",
			ImageURL:    "/img/sauce-bike-light.jpg",
			PriceCents:  999,
		},
	}
}

// FindProduct looks up a catalog product by ID
func FindProduct(id string) (Product, bool) {
	for _, p := range Catalog() {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
