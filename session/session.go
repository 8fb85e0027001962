// Package session mengelola sesi meja hasil scan QR.
// Sesi dipersist di store tab-scoped dan diperiksa kadaluarsanya secara
// lazy pada setiap pembacaan: tidak ada timer, tidak ada goroutine.
package session

import (
	"encoding/json"
	"time"

	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/storage"
)

// DefaultTTL mengikuti umur sesi QR di backend: 30 menit.
const DefaultTTL = 30 * time.Minute

const storageKey = "tableSession"

type Option func(*Store)

// WithTTL mengganti umur sesi untuk Create berikutnya.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithClock mengganti sumber waktu (dipakai test).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store membaca/menulis satu slot sesi meja.
type Store struct {
	store storage.Store
	ttl   time.Duration
	now   func() time.Time
}

func New(store storage.Store, opts ...Option) *Store {
	s := &Store{
		store: store,
		ttl:   DefaultTTL,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create menyimpan sesi baru dan menimpa sesi lama jika ada.
func (s *Store) Create(sessionID string, tableNumber int) models.TableSession {
	sess := models.TableSession{
		SessionID:   sessionID,
		TableNumber: tableNumber,
		ExpiresAt:   s.now().Add(s.ttl).UnixMilli(),
	}

	raw, _ := json.Marshal(sess)
	s.store.Set(storageKey, string(raw))
	return sess
}

// Read mengembalikan sesi jika ada dan belum kadaluarsa.
// Sesi kadaluarsa atau blob rusak langsung dihapus; absen adalah
// satu-satunya sinyal "tidak ada", tanpa error.
func (s *Store) Read() (*models.TableSession, bool) {
	raw, ok := s.store.Get(storageKey)
	if !ok {
		return nil, false
	}

	var sess models.TableSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.Clear()
		return nil, false
	}

	if sess.Expired(s.now()) {
		s.Clear()
		return nil, false
	}

	return &sess, true
}

// RemainingTime -> sisa umur sesi untuk countdown di UI, 0 jika habis.
func (s *Store) RemainingTime() time.Duration {
	sess, ok := s.Read()
	if !ok {
		return 0
	}

	remaining := time.UnixMilli(sess.ExpiresAt).Sub(s.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Clear mengakhiri sesi secara eksplisit, idempoten.
func (s *Store) Clear() {
	s.store.Delete(storageKey)
}
