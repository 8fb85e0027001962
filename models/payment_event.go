package models

// PaymentStatusSuccess adalah satu-satunya status pembayaran yang
// memicu aksi di client; status lain hanya dicatat di log.
const PaymentStatusSuccess = "SUCCESS"

// PaymentEvent adalah payload event "payment-status" dari stream
// GET /payment/events/{orderId}.
type PaymentEvent struct {
	OrderID         int     `json:"orderId" validate:"required"`
	PaymentID       int     `json:"paymentId"`
	Status          string  `json:"status" validate:"required"`
	Amount          float64 `json:"amount" validate:"gte=0"`
	Message         string  `json:"message"`
	Gateway         string  `json:"gateway"`
	TransactionDate string  `json:"transactionDate"`
}

// Success -> pembayaran dianggap beres hanya untuk status SUCCESS.
func (e *PaymentEvent) Success() bool {
	return e.Status == PaymentStatusSuccess
}
