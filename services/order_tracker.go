// Package services merangkai cache unpaid + event bridge menjadi alur
// pelacakan order: order dibuat -> dicatat unpaid -> stream dibuka ->
// konfirmasi bayar/terminal -> entri dibuang dan stream ditutup.
package services

import (
	"context"
	"errors"

	"github.com/yeremiapane/restaurant-client/events"
	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/orders"
	"github.com/yeremiapane/restaurant-client/session"
	"github.com/yeremiapane/restaurant-client/utils"
)

// ErrNoActiveSession -> melacak order tanpa sesi meja aktif tidak ada
// artinya; cache di-key dengan sessionId.
var ErrNoActiveSession = errors.New("tidak ada sesi meja aktif")

// Callbacks diisi pemilik UI. Keduanya boleh nil.
type Callbacks struct {
	// OnPaid dipanggil sekali saat pembayaran SUCCESS masuk.
	OnPaid func(orderID int, event models.PaymentEvent)
	// OnStatus dipanggil pada SETIAP perubahan status order.
	OnStatus func(order models.Order)
	// OnError menerima error parse/stream-putus dari kedua stream.
	OnError func(orderID int, err error)
}

// OrderTracker memegang siklus hidup pelacakan order unpaid.
type OrderTracker struct {
	cache     *orders.Cache
	bridge    *events.Bridge
	sessions  *session.Store
	fetcher   orders.Fetcher
	registry  *events.Registry
	callbacks Callbacks
}

func NewOrderTracker(cache *orders.Cache, bridge *events.Bridge, sessions *session.Store, fetcher orders.Fetcher, callbacks Callbacks) *OrderTracker {
	return &OrderTracker{
		cache:     cache,
		bridge:    bridge,
		sessions:  sessions,
		fetcher:   fetcher,
		registry:  events.NewRegistry(),
		callbacks: callbacks,
	}
}

// Track mencatat order sebagai unpaid dan membuka kedua stream-nya.
// Idempoten terhadap orderId yang sama (Add no-op, stream lama ditutup
// dulu supaya tidak dobel).
func (t *OrderTracker) Track(ctx context.Context, order models.Order) error {
	sess, ok := t.sessions.Read()
	if !ok {
		return ErrNoActiveSession
	}

	t.cache.Add(sess.SessionID, order.OrderID)
	t.registry.Close(order.OrderID)
	t.watch(ctx, sess.SessionID, order.OrderID)

	utils.InfoLogger.Printf("Melacak order %d di sesi %s", order.OrderID, sess.SessionID)
	return nil
}

// Resume dipanggil setelah reload: rekonsiliasi cache ke backend dulu
// (ID bisa sudah dibayar selagi aplikasi mati), lalu buka stream untuk
// sisa order yang masih unpaid.
func (t *OrderTracker) Resume(ctx context.Context) ([]models.Order, error) {
	sess, ok := t.sessions.Read()
	if !ok {
		return nil, ErrNoActiveSession
	}

	fresh := t.cache.Reconcile(ctx, sess.SessionID, t.fetcher)
	for _, order := range fresh {
		t.registry.Close(order.OrderID)
		t.watch(ctx, sess.SessionID, order.OrderID)
	}
	return fresh, nil
}

// Unpaid mengembalikan ID order yang masih dilacak di sesi berjalan.
func (t *OrderTracker) Unpaid() []int {
	sess, ok := t.sessions.Read()
	if !ok {
		return []int{}
	}
	return t.cache.List(sess.SessionID)
}

// Stop menutup SEMUA stream yang masih terbuka. Cache dibiarkan: entri
// unpaid tetap valid untuk Resume berikutnya selama sesinya hidup.
func (t *OrderTracker) Stop() {
	t.registry.CloseAll()
}

// watch membuka sepasang stream untuk satu order. sessionID diambil saat
// mulai melacak; kalau sesi keburu kadaluarsa, penghapusan memakai key
// lama dan daftarnya memang sudah yatim.
func (t *OrderTracker) watch(ctx context.Context, sessionID string, orderID int) {
	onError := func(err error) {
		utils.ErrorLogger.Printf("Stream order %d: %v", orderID, err)
		if t.callbacks.OnError != nil {
			t.callbacks.OnError(orderID, err)
		}
	}

	paySub := t.bridge.SubscribePayment(ctx, orderID, func(event models.PaymentEvent) {
		t.settle(sessionID, orderID)
		if t.callbacks.OnPaid != nil {
			t.callbacks.OnPaid(orderID, event)
		}
	}, onError)

	statusSub := t.bridge.SubscribeOrderStatus(ctx, orderID, func(order models.Order) {
		if t.callbacks.OnStatus != nil {
			t.callbacks.OnStatus(order)
		}
		if models.IsTerminalStatus(order.Status) {
			t.settle(sessionID, orderID)
		}
	}, onError)

	t.registry.Add(orderID, paySub)
	t.registry.Add(orderID, statusSub)
}

// settle menurunkan satu order dari pelacakan: entri cache dibuang dan
// kedua stream-nya ditutup. Idempoten; event pembayaran dan status
// terminal boleh datang dua-duanya.
func (t *OrderTracker) settle(sessionID string, orderID int) {
	t.cache.Remove(sessionID, orderID)
	t.registry.Close(orderID)
	utils.InfoLogger.Printf("Order %d selesai dibayar, berhenti dilacak", orderID)
}
