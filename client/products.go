package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yeremiapane/restaurant-client/models"
)

// GetAllProducts mengambil seluruh menu.
func (c *Client) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	raw, err := c.do(ctx, http.MethodGet, "/menu/products/getAll", nil, false)
	if err != nil {
		return nil, err
	}

	products, err := models.DecodeStrictSlice[models.Product](raw, "product list")
	if err != nil {
		return nil, &APIError{Kind: KindDecode, Err: err}
	}
	return products, nil
}

// GetProductsByCategory mengambil menu satu kategori.
func (c *Client) GetProductsByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	path := fmt.Sprintf("/menu/products/category/%d", categoryID)
	raw, err := c.do(ctx, http.MethodGet, path, nil, false)
	if err != nil {
		return nil, err
	}

	products, err := models.DecodeStrictSlice[models.Product](raw, "product list")
	if err != nil {
		return nil, &APIError{Kind: KindDecode, Err: err}
	}
	return products, nil
}
