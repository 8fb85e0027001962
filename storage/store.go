// Package storage menyediakan port key-value untuk state lokal client.
// Dua implementasi: MemoryStore (umur satu proses/tab, seperti sessionStorage
// di browser) dan GormStore (persisten lintas proses, seperti localStorage).
package storage

// Store adalah slot key-value sinkron. Semua implementasi harus aman
// dipakai dari banyak goroutine; nilai yang hilang/rusak dibaca sebagai absen.
type Store interface {
	// Get mengembalikan nilai dan true jika key ada.
	Get(key string) (string, bool)
	// Set menimpa nilai lama (last write wins).
	Set(key, value string)
	// Delete idempoten, key yang tidak ada bukan error.
	Delete(key string)
}
