package models

// Category mengikuti bentuk kategori di endpoint menu backend.
type Category struct {
	CategoryID int    `json:"categoryId" validate:"required"`
	Name       string `json:"name" validate:"required"`
}

// Product adalah satu item menu dari GET /menu/products/getAll.
// Image bisa null untuk produk tanpa foto.
type Product struct {
	ProductID int      `json:"productId" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Price     float64  `json:"price" validate:"gte=0"`
	Image     *string  `json:"image"`
	Category  Category `json:"category"`
}
