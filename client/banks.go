package client

import (
	"bytes"
	"context"
	"net/http"

	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/utils"
)

// GetActiveBankAccount mengambil rekening tujuan transfer.
// Backend kadang menjawab objek tunggal, kadang array; dua-duanya
// ditoleransi dan hanya rekening ber-status ACTIVE yang diterima.
func (c *Client) GetActiveBankAccount(ctx context.Context) (*models.BankAccount, error) {
	raw, err := c.do(ctx, http.MethodGet, "/banks/active", nil, false)
	if err != nil {
		return nil, err
	}

	var account models.BankAccount

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		accounts, err := models.DecodeStrictSlice[models.BankAccount](raw, "bank account list")
		if err != nil {
			return nil, &APIError{Kind: KindDecode, Err: err}
		}
		if len(accounts) == 0 {
			return nil, &APIError{
				Kind:       KindBusiness,
				StatusCode: http.StatusNotFound,
				Message:    "no active bank account",
			}
		}
		account = accounts[0]
	} else {
		if err := models.DecodeStrict(raw, &account, "bank account"); err != nil {
			return nil, &APIError{Kind: KindDecode, Err: err}
		}
	}

	if !account.Active() {
		utils.InfoLogger.Printf("Rekening %s berstatus %s, tidak dipakai", account.AccountNumber, account.Status)
		return nil, &APIError{
			Kind:       KindBusiness,
			StatusCode: http.StatusNotFound,
			Message:    "no active bank account",
		}
	}

	return &account, nil
}
