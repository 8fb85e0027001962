package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/utils"
)

// CreateOrder mengirim order baru. Token dilampirkan kalau ada user
// login, tapi tamu anonim tetap boleh memesan.
func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	raw, err := c.do(ctx, http.MethodPost, "/orders/create", req, false)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := models.DecodeStrict(raw, &order, "created order"); err != nil {
		return nil, &APIError{Kind: KindDecode, Err: err}
	}

	utils.InfoLogger.Printf("Order %d dibuat untuk meja %d, total %s",
		order.OrderID, order.TableNumber, utils.FormatPrice(order.TotalAmount))
	return &order, nil
}

// GetOrder mengambil detail penuh satu order.
func (c *Client) GetOrder(ctx context.Context, orderID int) (*models.Order, error) {
	path := fmt.Sprintf("/orders/%d", orderID)
	raw, err := c.do(ctx, http.MethodGet, path, nil, false)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := models.DecodeStrict(raw, &order, "order detail"); err != nil {
		return nil, &APIError{Kind: KindDecode, Err: err}
	}
	return &order, nil
}

// GetUserOrders mengambil riwayat order milik user login (bearer wajib).
func (c *Client) GetUserOrders(ctx context.Context, userID int) ([]models.Order, error) {
	path := fmt.Sprintf("/auth/orders/%d", userID)
	raw, err := c.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}

	history, err := models.DecodeStrictSlice[models.Order](raw, "order history")
	if err != nil {
		return nil, &APIError{Kind: KindDecode, Err: err}
	}
	return history, nil
}
