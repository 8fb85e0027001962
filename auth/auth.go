// Package auth mengelola identity user yang login beserta tokennya.
// Berbeda dengan sesi meja, identity dipersist di store lintas proses
// supaya user tidak perlu login ulang tiap buka aplikasi.
package auth

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/storage"
	"github.com/yeremiapane/restaurant-client/utils"
)

// DefaultTTL membatasi umur identity di storage: 2 jam.
const DefaultTTL = 2 * time.Hour

const (
	identityKey     = "userData"
	accessTokenKey  = "accessToken"
	refreshTokenKey = "refreshToken"
)

// ErrNotClientRole -> login dengan role selain CLIENT ditolak di layer UI;
// akun staff tidak boleh membuka sesi di aplikasi pemesanan.
var ErrNotClientRole = errors.New("akun ini bukan akun pelanggan")

type Option func(*Store)

func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store membaca/menulis identity + token dan menyiarkan perubahannya
// ke bagian UI lain (navbar, halaman riwayat) dalam proses yang sama.
type Store struct {
	store storage.Store
	ttl   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	listeners map[int]func()
	nextID    int
}

func New(store storage.Store, opts ...Option) *Store {
	s := &Store{
		store:     store,
		ttl:       DefaultTTL,
		now:       time.Now,
		listeners: make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save menyimpan identity dengan expiresAt = now + TTL.
// Kalau access token tersimpan punya klaim exp yang lebih pendek, batas
// token yang menang: identity lokal tidak boleh hidup lebih lama dari
// token yang dipakainya.
func (s *Store) Save(user models.UserIdentity) models.StoredIdentity {
	expiresAt := s.now().Add(s.ttl)

	if token, ok := s.store.Get(accessTokenKey); ok && token != "" {
		if exp, err := utils.TokenExpiry(token); err == nil && exp.Before(expiresAt) {
			expiresAt = exp
		}
	}

	stored := models.StoredIdentity{
		UserIdentity: user,
		ExpiresAt:    expiresAt.UnixMilli(),
	}

	raw, _ := json.Marshal(stored)
	s.store.Set(identityKey, string(raw))
	s.broadcast()
	return stored
}

// Read mengembalikan identity hanya jika record utuh dan belum kadaluarsa.
// Record rusak, field hilang, atau expiresAt bukan angka semuanya
// diperlakukan sama: clear lalu "tidak ada" (fail closed). Ini disengaja,
// bukan kelalaian; jangan dilonggarkan.
func (s *Store) Read() (*models.StoredIdentity, bool) {
	raw, ok := s.store.Get(identityKey)
	if !ok {
		return nil, false
	}

	var stored models.StoredIdentity
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.Clear()
		return nil, false
	}

	// expiresAt hilang di-decode jadi 0 dan langsung gugur di sini
	if s.now().UnixMilli() > stored.ExpiresAt {
		s.Clear()
		return nil, false
	}

	if stored.UserID == 0 || stored.Name == "" || stored.PhoneNumber == "" {
		s.Clear()
		return nil, false
	}

	return &stored, true
}

// SetTokens menyimpan bearer + refresh token hasil login.
func (s *Store) SetTokens(accessToken, refreshToken string) {
	if accessToken != "" {
		s.store.Set(accessTokenKey, accessToken)
	}
	if refreshToken != "" {
		s.store.Set(refreshTokenKey, refreshToken)
	}
}

// AccessToken dipakai gateway sebagai token provider.
// Token tanpa identity valid ikut terhapus, jadi cukup cek identity dulu.
func (s *Store) AccessToken() (string, bool) {
	if _, ok := s.Read(); !ok {
		return "", false
	}
	token, ok := s.store.Get(accessTokenKey)
	return token, ok && token != ""
}

// Clear menghapus identity dan kedua token sebagai satu operasi logis,
// lalu menyiarkan perubahan. Idempoten.
func (s *Store) Clear() {
	s.store.Delete(identityKey)
	s.store.Delete(accessTokenKey)
	s.store.Delete(refreshTokenKey)
	s.broadcast()
}

// EstablishSession memproses jawaban login: hanya role CLIENT yang boleh
// membuat sesi. Respons tanpa role juga ditolak dan tidak ada yang
// disimpan.
func (s *Store) EstablishSession(resp models.AuthResponse) (*models.StoredIdentity, error) {
	if resp.Role != models.RoleClient {
		utils.InfoLogger.Printf("Menolak sesi login: role %q bukan %s", resp.Role, models.RoleClient)
		return nil, ErrNotClientRole
	}

	s.SetTokens(resp.Token, resp.RefreshToken)
	stored := s.Save(models.UserIdentity{
		UserID:      resp.UserID,
		Name:        resp.Name,
		PhoneNumber: resp.PhoneNumber,
	})
	return &stored, nil
}

// OnChange mendaftarkan listener yang dipanggil setiap kali Save/Clear
// selesai menulis. Mengembalikan fungsi untuk berhenti mendengarkan.
// Tidak ada jaminan urutan antar listener.
func (s *Store) OnChange(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) broadcast() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	// Panggil di luar lock supaya listener boleh memanggil balik store
	for _, fn := range fns {
		fn()
	}
}
