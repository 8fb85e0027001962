package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yeremiapane/restaurant-client/models"
)

// CreateTableSession meminta sesi baru untuk satu meja saat QR di-scan.
func (c *Client) CreateTableSession(ctx context.Context, tableNumber int) (*models.SessionResponse, error) {
	path := fmt.Sprintf("/session/%d", tableNumber)
	raw, err := c.do(ctx, http.MethodPost, path, nil, false)
	if err != nil {
		return nil, err
	}

	var resp models.SessionResponse
	if err := models.DecodeStrict(raw, &resp, "session response"); err != nil {
		return nil, &APIError{Kind: KindDecode, Err: err}
	}
	return &resp, nil
}
