package models

// SuggestionRequest adalah body POST /ai/suggestion.
type SuggestionRequest struct {
	UserDemand string `json:"userDemand" validate:"required"`
}

// Suggestion adalah jawaban mesin saran menu. Nama field mengikuti
// kontrak backend apa adanya (snake_case).
type Suggestion struct {
	MainDish string `json:"main_dish"`
	SideDish string `json:"side_dish"`
	Drink    string `json:"drink"`
	Reason   string `json:"reason"`
}
