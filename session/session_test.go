package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-client/session"
	"github.com/yeremiapane/restaurant-client/storage"
)

// fakeClock membuat waktu bisa digeser tanpa sleep.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newStore(t *testing.T) (*session.Store, *storage.MemoryStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	mem := storage.NewMemoryStore()
	return session.New(mem, session.WithClock(clock.Now)), mem, clock
}

func TestCreateAndRead(t *testing.T) {
	store, _, _ := newStore(t)

	created := store.Create("sess-abc", 7)
	assert.Equal(t, "sess-abc", created.SessionID)
	assert.Equal(t, 7, created.TableNumber)

	sess, ok := store.Read()
	assert.True(t, ok)
	assert.Equal(t, "sess-abc", sess.SessionID)
	assert.Equal(t, 7, sess.TableNumber)
}

func TestCreateOverwritesPreviousSession(t *testing.T) {
	store, _, _ := newStore(t)

	store.Create("sess-old", 3)
	store.Create("sess-new", 9)

	sess, ok := store.Read()
	assert.True(t, ok)
	assert.Equal(t, "sess-new", sess.SessionID)
	assert.Equal(t, 9, sess.TableNumber)
}

// Sesi meja 7 dengan TTL 30 menit: di t0+29m masih hidup, di t0+31m
// Read kosong dan RemainingTime 0.
func TestSessionLifecycleTable7(t *testing.T) {
	store, _, clock := newStore(t)

	store.Create("sess-meja7", 7)

	clock.Advance(29 * time.Minute)
	assert.Greater(t, store.RemainingTime(), time.Duration(0))

	clock.Advance(2 * time.Minute) // t0+31m
	_, ok := store.Read()
	assert.False(t, ok)
	assert.Equal(t, time.Duration(0), store.RemainingTime())
}

// Read setelah kadaluarsa tidak meninggalkan jejak: slot langsung bersih
// dan Read berikutnya tetap kosong.
func TestExpiredSessionPurgedOnRead(t *testing.T) {
	store, mem, clock := newStore(t)

	store.Create("sess-abc", 2)
	clock.Advance(session.DefaultTTL + time.Second)

	_, ok := store.Read()
	assert.False(t, ok)

	// Slot storage benar-benar kosong setelah purge
	_, rawExists := mem.Get("tableSession")
	assert.False(t, rawExists)

	_, ok = store.Read()
	assert.False(t, ok)
}

func TestMalformedBlobReadsAsAbsent(t *testing.T) {
	store, mem, _ := newStore(t)

	mem.Set("tableSession", "{bukan json")

	_, ok := store.Read()
	assert.False(t, ok)

	// Self-heal: blob rusak ikut dibuang
	_, rawExists := mem.Get("tableSession")
	assert.False(t, rawExists)
}

func TestClearIdempotent(t *testing.T) {
	store, _, _ := newStore(t)

	store.Create("sess-abc", 1)
	store.Clear()
	store.Clear()

	_, ok := store.Read()
	assert.False(t, ok)
}

func TestCustomTTL(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	mem := storage.NewMemoryStore()
	store := session.New(mem, session.WithClock(clock.Now), session.WithTTL(time.Minute))

	store.Create("sess-singkat", 4)
	clock.Advance(59 * time.Second)
	_, ok := store.Read()
	assert.True(t, ok)

	clock.Advance(2 * time.Second)
	_, ok = store.Read()
	assert.False(t, ok)
}
