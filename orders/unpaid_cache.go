// Package orders melacak order yang dibuat di sesi meja berjalan dan
// belum terkonfirmasi dibayar. Cache ini hanya indeks kenyamanan di sisi
// client, BUKAN sumber kebenaran; isinya wajib direkonsiliasi ke backend
// sebelum dipercaya.
package orders

import (
	"encoding/json"

	"github.com/yeremiapane/restaurant-client/storage"
)

const keyPrefix = "unpaidOrderIds:"

// Cache menyimpan daftar ID order unpaid per sessionId, terbaru di depan.
// Hanya ID yang disimpan; snapshot order diambil ulang dari backend
// supaya status pembayaran tidak pernah basi.
type Cache struct {
	store storage.Store
}

func NewCache(store storage.Store) *Cache {
	return &Cache{store: store}
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}

// List mengembalikan ID order unpaid untuk satu sesi, terbaru dulu.
// Key absen atau isi rusak sama-sama menghasilkan daftar kosong.
func (c *Cache) List(sessionID string) []int {
	raw, ok := c.store.Get(key(sessionID))
	if !ok {
		return []int{}
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []int{}
	}
	return ids
}

// Add menyisipkan orderID di depan jika belum ada; duplikat di-no-op
// dan posisi pertama dipertahankan.
func (c *Cache) Add(sessionID string, orderID int) {
	existing := c.List(sessionID)
	for _, id := range existing {
		if id == orderID {
			return
		}
	}

	next := append([]int{orderID}, existing...)
	raw, _ := json.Marshal(next)
	c.store.Set(key(sessionID), string(raw))
}

// Remove membuang orderID dari daftar; idempoten kalau sudah tidak ada.
func (c *Cache) Remove(sessionID string, orderID int) {
	existing := c.List(sessionID)

	next := make([]int, 0, len(existing))
	for _, id := range existing {
		if id != orderID {
			next = append(next, id)
		}
	}

	raw, _ := json.Marshal(next)
	c.store.Set(key(sessionID), string(raw))
}
