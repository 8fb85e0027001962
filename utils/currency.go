package utils

import (
	"fmt"
	"strings"
)

// FormatPrice memformat angka ke format mata uang Vietnam (VND).
// VND tidak memakai desimal, pemisah ribuan memakai titik: 150000 -> "150.000 VNĐ"
func FormatPrice(amount float64) string {
	formatted := fmt.Sprintf("%.0f", amount)

	negative := strings.HasPrefix(formatted, "-")
	if negative {
		formatted = formatted[1:]
	}

	// Tambahkan pemisah ribuan
	var result []string
	for i := len(formatted); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{formatted[start:i]}, result...)
	}

	joined := strings.Join(result, ".")
	if negative {
		joined = "-" + joined
	}
	return joined + " VNĐ"
}
