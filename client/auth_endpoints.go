package client

import (
	"context"
	"net/http"

	"github.com/yeremiapane/restaurant-client/models"
)

// Register mendaftarkan akun pelanggan baru.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, "/auth/client-register", req, false)
	if err != nil {
		return nil, err
	}

	var resp models.AuthResponse
	if err := models.DecodeStrict(raw, &resp, "register response"); err != nil {
		return nil, &APIError{Kind: KindDecode, Err: err}
	}
	return &resp, nil
}

// Login menukar kredensial dengan identity + token.
// Catatan: gate role CLIENT ada di auth.Store.EstablishSession, bukan di
// sini; gateway hanya mengantar jawaban server.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, "/auth/login", req, false)
	if err != nil {
		return nil, err
	}

	var resp models.AuthResponse
	if err := models.DecodeStrict(raw, &resp, "login response"); err != nil {
		return nil, &APIError{Kind: KindDecode, Err: err}
	}
	return &resp, nil
}

// UpdatePassword mengganti password user login (bearer wajib).
func (c *Client) UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/update-password", req, true)
	return err
}
