package models

// Product mirrors the slice of the Printify product payload the storefront
// needs. Prices are integer cents, as Printify reports them.
type Product struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Images      []ProductImage   `json:"images"`
	Variants    []ProductVariant `json:"variants"`
	Visible     bool             `json:"visible"`
}

type ProductImage struct {
	Src       string `json:"src"`
	IsDefault bool   `json:"is_default"`
}

type ProductVariant struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	IsEnabled bool   `json:"is_enabled"`
}

// ProductPage is the paginated shape Printify returns for a product listing.
type ProductPage struct {
	CurrentPage int       `json:"current_page"`
	LastPage    int       `json:"last_page"`
	Total       int       `json:"total"`
	Data        []Product `json:"data"`
}
