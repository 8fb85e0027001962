package models

// Status order milik server; client hanya membaca.
// Nilai yang pernah diamati: PENDING, SERVED, PAID, COMPLETED, DONE.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusServed    = "SERVED"
	OrderStatusPaid      = "PAID"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusDone      = "DONE"
)

// IsTerminalStatus -> true untuk status paid/selesai; order dengan status
// ini tidak perlu dilacak lagi sebagai unpaid. Status lain (termasuk yang
// belum pernah kita lihat) dianggap masih unpaid.
func IsTerminalStatus(status string) bool {
	switch status {
	case OrderStatusPaid, OrderStatusCompleted, OrderStatusDone:
		return true
	}
	return false
}

// CanPay -> aksi bayar hanya boleh saat order sudah SERVED, persis itu saja.
func CanPay(status string) bool {
	return status == OrderStatusServed
}

// OrderItem adalah satu baris item pada detail order.
type OrderItem struct {
	OrderItemID  int     `json:"orderItemId"`
	ProductID    int     `json:"productId" validate:"required"`
	ProductName  string  `json:"productName"`
	ProductPrice float64 `json:"productPrice" validate:"gte=0"`
	Quantity     int     `json:"quantity" validate:"gte=1"`
	Note         string  `json:"note"`
}

// Order adalah snapshot penuh dari GET /orders/{orderId} dan event
// order-status-changed.
type Order struct {
	OrderID      int         `json:"orderId" validate:"required"`
	CustomerName string      `json:"customerName"`
	TableNumber  int         `json:"tableNumber"`
	TotalAmount  float64     `json:"totalAmount" validate:"gte=0"`
	OrderTime    string      `json:"orderTime"`
	Status       string      `json:"status" validate:"required"`
	Items        []OrderItem `json:"items"`
}

// CreateOrderItem adalah item pada request pembuatan order.
type CreateOrderItem struct {
	ProductID int    `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
	Note      string `json:"note,omitempty"`
}

// CreateOrderRequest adalah body POST /orders/create.
// Name/UserID/PromotionCode opsional: tamu anonim boleh memesan.
type CreateOrderRequest struct {
	SessionID     string            `json:"sessionId" validate:"required"`
	TableNumber   int               `json:"tableNumber" validate:"required"`
	Name          string            `json:"name,omitempty"`
	UserID        int               `json:"userId,omitempty"`
	PromotionCode string            `json:"promotionCode,omitempty"`
	Total         float64           `json:"total" validate:"gte=0"`
	Items         []CreateOrderItem `json:"items" validate:"required,min=1,dive"`
}
