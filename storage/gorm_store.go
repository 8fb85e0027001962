package storage

import (
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Entry adalah satu slot key-value yang dipersist di SQLite.
type Entry struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Entry) TableName() string {
	return "storage_entries"
}

// GormStore mempersist state lintas proses (identity user, token).
// Padanan localStorage di browser: tetap ada setelah aplikasi ditutup.
type GormStore struct {
	db *gorm.DB
}

// OpenGormStore membuka (atau membuat) file SQLite di path dan
// menjalankan AutoMigrate untuk tabel storage_entries.
// path ":memory:" sah untuk testing.
func OpenGormStore(path string) (*GormStore, error) {
	if path == "" {
		return nil, errors.New("storage path is empty")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}

	return &GormStore{db: db}, nil
}

// NewGormStore membungkus koneksi gorm yang sudah ada (dipakai test).
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) Get(key string) (string, bool) {
	var entry Entry
	if err := g.db.First(&entry, "key = ?", key).Error; err != nil {
		// Baris hilang atau DB bermasalah sama-sama dibaca sebagai absen;
		// pembaca state lokal tidak boleh gagal karena storage.
		return "", false
	}
	return entry.Value, true
}

func (g *GormStore) Set(key, value string) {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry)
}

func (g *GormStore) Delete(key string) {
	g.db.Delete(&Entry{}, "key = ?", key)
}
