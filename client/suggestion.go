package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/utils"
)

// SuggestedDishes adalah hasil saran menu yang sudah dipetakan ke produk
// katalog. Dishes bisa kurang dari tiga kalau nama saran tidak ketemu.
type SuggestedDishes struct {
	Dishes []models.Product
	Reason string
	// Fallback true kalau saran datang dari katalog lokal, bukan mesin AI
	Fallback bool
}

// GetSuggestion memanggil mesin saran menu mentah-mentah.
func (c *Client) GetSuggestion(ctx context.Context, userDemand string) (*models.Suggestion, error) {
	req := models.SuggestionRequest{UserDemand: userDemand}
	raw, err := c.do(ctx, http.MethodPost, "/ai/suggestion", req, false)
	if err != nil {
		return nil, err
	}

	var suggestion models.Suggestion
	if err := models.DecodeStrict(raw, &suggestion, "suggestion"); err != nil {
		return nil, &APIError{Kind: KindDecode, Err: err}
	}
	return &suggestion, nil
}

// SuggestDishes adalah jalur yang dipakai UI: best effort, tidak pernah
// gagal. Error apapun dari mesin saran jatuh ke pilihan katalog lokal.
func (c *Client) SuggestDishes(ctx context.Context, userDemand string, catalog []models.Product) SuggestedDishes {
	suggestion, err := c.GetSuggestion(ctx, userDemand)
	if err != nil {
		utils.ErrorLogger.Printf("Mesin saran gagal, pakai fallback katalog: %v", err)
		return fallbackDishes(catalog)
	}

	dishes := make([]models.Product, 0, 3)
	for _, name := range []string{suggestion.MainDish, suggestion.SideDish, suggestion.Drink} {
		if product := findProductByName(catalog, name); product != nil {
			dishes = append(dishes, *product)
		}
	}

	if len(dishes) == 0 {
		return fallbackDishes(catalog)
	}
	return SuggestedDishes{Dishes: dishes, Reason: suggestion.Reason}
}

// findProductByName mencocokkan nama saran ke katalog: exact dulu,
// lalu partial dua arah, semuanya case-insensitive.
func findProductByName(catalog []models.Product, name string) *models.Product {
	if name == "" {
		return nil
	}
	lower := strings.ToLower(name)

	for i := range catalog {
		if strings.ToLower(catalog[i].Name) == lower {
			return &catalog[i]
		}
	}
	for i := range catalog {
		candidate := strings.ToLower(catalog[i].Name)
		if strings.Contains(candidate, lower) || strings.Contains(lower, candidate) {
			return &catalog[i]
		}
	}
	return nil
}

// fallbackDishes mengambil maksimal satu produk per kategori supaya
// komposisinya tetap mirip main/side/drink.
func fallbackDishes(catalog []models.Product) SuggestedDishes {
	seen := make(map[int]bool)
	dishes := make([]models.Product, 0, 3)

	for _, product := range catalog {
		if seen[product.Category.CategoryID] {
			continue
		}
		seen[product.Category.CategoryID] = true
		dishes = append(dishes, product)
		if len(dishes) == 3 {
			break
		}
	}

	return SuggestedDishes{
		Dishes:   dishes,
		Reason:   "Đây là những món phổ biến nhất của chúng tôi!",
		Fallback: true,
	}
}
