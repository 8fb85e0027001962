package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/utils"
)

// Error validasi promo di sisi client. MinOrderError dibuat bertipe
// sendiri supaya UI bisa menampilkan pesan "minimal order" yang spesifik,
// bukan pesan generik.
var (
	ErrPromotionNotFound  = &APIError{Kind: KindBusiness, Message: "promotion code not found"}
	ErrPromotionExhausted = &APIError{Kind: KindBusiness, Message: "promotion code exhausted"}
	ErrPromotionInactive  = &APIError{Kind: KindBusiness, Message: "promotion code inactive"}
)

type MinOrderError struct {
	Code     string
	Required float64
}

func (e *MinOrderError) Error() string {
	return fmt.Sprintf("promotion %s requires minimum order of %s", e.Code, utils.FormatPrice(e.Required))
}

// GetActivePromotions mengambil daftar promo aktif.
func (c *Client) GetActivePromotions(ctx context.Context) ([]models.Promotion, error) {
	raw, err := c.do(ctx, http.MethodGet, "/promotions/active", nil, false)
	if err != nil {
		return nil, err
	}

	promos, err := models.DecodeStrictSlice[models.Promotion](raw, "promotion list")
	if err != nil {
		return nil, &APIError{Kind: KindDecode, Err: err}
	}
	return promos, nil
}

// ValidatePromotion memeriksa satu promo terhadap total keranjang.
// Ini pre-check optimistis saja: server tetap memvalidasi ulang saat
// order dibuat, dan keputusan server yang berlaku.
func ValidatePromotion(promo models.Promotion, total float64) error {
	if promo.Status != "" && !strings.EqualFold(promo.Status, "ACTIVE") {
		return ErrPromotionInactive
	}
	if promo.RemainingCount <= 0 {
		return ErrPromotionExhausted
	}
	if total < promo.MinOrderAmount {
		return &MinOrderError{Code: promo.Code, Required: promo.MinOrderAmount}
	}
	return nil
}

// CheckPromotionCode mencari kode di daftar promo aktif lalu
// memvalidasinya terhadap total keranjang sebelum order dikirim.
func (c *Client) CheckPromotionCode(ctx context.Context, code string, total float64) (*models.Promotion, error) {
	promos, err := c.GetActivePromotions(ctx)
	if err != nil {
		return nil, err
	}

	for _, promo := range promos {
		if strings.EqualFold(promo.Code, code) {
			if err := ValidatePromotion(promo, total); err != nil {
				return nil, err
			}
			return &promo, nil
		}
	}
	return nil, ErrPromotionNotFound
}
