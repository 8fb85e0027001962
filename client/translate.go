package client

import (
	"errors"
	"strings"

	"github.com/yeremiapane/restaurant-client/utils"
)

// genericMessage dipakai saat tidak ada pola yang cocok.
const genericMessage = "Có lỗi xảy ra. Vui lòng thử lại."

// translation memetakan potongan pesan backend ke kalimat yang layak
// ditampilkan. Pencocokan best effort berbasis substring, urutan penting:
// pola yang lebih spesifik ditaruh di atas.
type translation struct {
	contains []string
	message  string
}

var translations = []translation{
	{[]string{"session", "expired"}, "Phiên đặt món đã hết hạn. Vui lòng quét lại mã QR."},
	{[]string{"session", "not found"}, "Phiên đặt món đã hết hạn. Vui lòng quét lại mã QR."},
	{[]string{"table", "unavailable"}, "Bàn này hiện không khả dụng. Vui lòng gọi nhân viên."},
	{[]string{"table", "occupied"}, "Bàn này hiện không khả dụng. Vui lòng gọi nhân viên."},
	{[]string{"promotion", "expired"}, "Mã khuyến mãi đã hết hạn."},
	{[]string{"promotion", "exhausted"}, "Mã khuyến mãi đã hết lượt sử dụng."},
	{[]string{"promotion", "minimum"}, "Đơn hàng chưa đạt giá trị tối thiểu của mã khuyến mãi."},
	{[]string{"promotion"}, "Mã khuyến mãi không hợp lệ."},
	{[]string{"out of stock"}, "Món này đã hết. Vui lòng chọn món khác."},
	{[]string{"stock"}, "Món này đã hết. Vui lòng chọn món khác."},
	{[]string{"timeout"}, "Kết nối tới máy chủ quá chậm. Vui lòng thử lại."},
	{[]string{"authentication required"}, "Vui lòng đăng nhập để tiếp tục."},
}

// TranslateError mengubah error gateway menjadi kalimat untuk user.
// Caller tetap boleh menampilkan pesan mentah kalau mau; fungsi ini
// hanya lapisan kenyamanan.
func TranslateError(err error) string {
	if err == nil {
		return ""
	}

	var minOrder *MinOrderError
	if errors.As(err, &minOrder) {
		return "Đơn hàng tối thiểu " + utils.FormatPrice(minOrder.Required) + " mới dùng được mã này."
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return genericMessage
	}

	switch apiErr.Kind {
	case KindTransport:
		return "Không thể kết nối tới máy chủ. Vui lòng kiểm tra mạng."
	case KindDecode:
		return genericMessage
	}

	if apiErr.StatusCode >= 500 {
		return "Máy chủ đang gặp sự cố. Vui lòng thử lại sau."
	}

	lower := strings.ToLower(apiErr.Message)
	for _, t := range translations {
		matched := true
		for _, needle := range t.contains {
			if !strings.Contains(lower, needle) {
				matched = false
				break
			}
		}
		if matched {
			return t.message
		}
	}

	return genericMessage
}
