package models

// Promotion dari GET /promotions/active. Field product/category bisa null
// untuk promo yang berlaku ke semua produk.
type Promotion struct {
	PromotionID        int     `json:"promotionId" validate:"required"`
	Code               string  `json:"code" validate:"required"`
	PromotionType      string  `json:"promotionType"`
	DiscountPercentage float64 `json:"discountPercentage" validate:"gte=0,lte=100"`
	StartDate          string  `json:"startDate"`
	EndDate            string  `json:"endDate"`
	ProductID          *int    `json:"productId"`
	ProductName        *string `json:"productName"`
	CategoryID         *int    `json:"categoryId"`
	CategoryName       *string `json:"categoryName"`
	TotalQuantity      int     `json:"totalQuantity"`
	UsedCount          int     `json:"usedCount"`
	RemainingCount     int     `json:"remainingCount"`
	MinOrderAmount     float64 `json:"minOrderAmount" validate:"gte=0"`
	Status             string  `json:"status"`
	CreatedAt          string  `json:"createdAt"`
}

// Discount menghitung potongan promo terhadap total keranjang.
func (p *Promotion) Discount(total float64) float64 {
	return total * p.DiscountPercentage / 100
}
