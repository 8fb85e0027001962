package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-client/models"
)

func TestTerminalStatus(t *testing.T) {
	for _, status := range []string{"PAID", "COMPLETED", "DONE"} {
		assert.True(t, models.IsTerminalStatus(status), status)
	}
	for _, status := range []string{"PENDING", "SERVED", "", "paid", "COOKING"} {
		assert.False(t, models.IsTerminalStatus(status), status)
	}
}

// Aksi bayar hanya terbuka saat SERVED, status lain tidak.
func TestCanPayOnlyWhenServed(t *testing.T) {
	assert.True(t, models.CanPay("SERVED"))
	for _, status := range []string{"PENDING", "PAID", "COMPLETED", "DONE", ""} {
		assert.False(t, models.CanPay(status), status)
	}
}

func TestDecodeStrictRejectsMalformedPayload(t *testing.T) {
	var order models.Order

	err := models.DecodeStrict([]byte("{bukan json"), &order, "order")
	var decodeErr *models.DecodeError
	assert.ErrorAs(t, err, &decodeErr)

	// orderId hilang -> gagal skema, bukan NaN yang merembet ke harga
	err = models.DecodeStrict([]byte(`{"status":"PENDING"}`), &order, "order")
	assert.ErrorAs(t, err, &decodeErr)

	// totalAmount negatif ditolak
	err = models.DecodeStrict([]byte(`{"orderId":1,"status":"PENDING","totalAmount":-5}`), &order, "order")
	assert.ErrorAs(t, err, &decodeErr)
}

func TestDecodeStrictAcceptsValidOrder(t *testing.T) {
	raw := []byte(`{
		"orderId": 42,
		"customerName": "Khach hang",
		"tableNumber": 7,
		"totalAmount": 150000,
		"orderTime": "2025-03-01T12:00:00Z",
		"status": "PENDING",
		"items": [
			{"orderItemId": 1, "productId": 3, "productName": "Pho bo", "productPrice": 75000, "quantity": 2, "note": ""}
		]
	}`)

	var order models.Order
	assert.NoError(t, models.DecodeStrict(raw, &order, "order"))
	assert.Equal(t, 42, order.OrderID)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, float64(150000), order.TotalAmount)
}

func TestDecodeStrictSliceValidatesEachElement(t *testing.T) {
	raw := []byte(`[
		{"productId": 1, "name": "Pho", "price": 50000, "image": null, "category": {"categoryId": 1, "name": "Do an"}},
		{"name": "Tanpa id", "price": 10000}
	]`)

	_, err := models.DecodeStrictSlice[models.Product](raw, "product list")
	var decodeErr *models.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestPromotionDiscount(t *testing.T) {
	promo := models.Promotion{DiscountPercentage: 10}
	assert.Equal(t, float64(15000), promo.Discount(150000))
}

func TestPaymentEventSuccess(t *testing.T) {
	assert.True(t, (&models.PaymentEvent{Status: "SUCCESS"}).Success())
	assert.False(t, (&models.PaymentEvent{Status: "FAILED"}).Success())
	assert.False(t, (&models.PaymentEvent{Status: "success"}).Success())
}

func TestBankAccountActive(t *testing.T) {
	assert.True(t, (&models.BankAccount{Status: "ACTIVE"}).Active())
	assert.False(t, (&models.BankAccount{Status: "INACTIVE"}).Active())
}
