package models

import "time"

// TableSession mengikat satu "tab" ke satu meja fisik hasil scan QR.
// ExpiresAt dalam epoch millisecond, sama dengan blob yang dipersist.
type TableSession struct {
	SessionID   string `json:"sessionId"`
	TableNumber int    `json:"tableNumber"`
	ExpiresAt   int64  `json:"expiresAt"`
}

// Expired -> sesi hanya valid selama now <= expiresAt.
func (s *TableSession) Expired(now time.Time) bool {
	return now.UnixMilli() > s.ExpiresAt
}

// SessionResponse adalah jawaban backend saat scan QR membuat sesi baru.
type SessionResponse struct {
	SessionID   string `json:"sessionId" validate:"required"`
	TableNumber int    `json:"tableNumber" validate:"required"`
}
