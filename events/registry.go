package events

import "sync"

// Registry memegang subscription aktif per order supaya teardown bisa
// menutup SEMUA stream, bukan cuma yang terakhir dibuka.
type Registry struct {
	mu   sync.Mutex
	subs map[int][]*Subscription
}

func NewRegistry() *Registry {
	return &Registry{
		subs: make(map[int][]*Subscription),
	}
}

// Add mencatat subscription milik satu order.
func (r *Registry) Add(orderID int, sub *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[orderID] = append(r.subs[orderID], sub)
}

// Close menutup semua stream milik satu order.
func (r *Registry) Close(orderID int) {
	r.mu.Lock()
	subs := r.subs[orderID]
	delete(r.subs, orderID)
	r.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
}

// CloseAll menutup semua stream semua order, dipakai saat teardown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	all := r.subs
	r.subs = make(map[int][]*Subscription)
	r.mu.Unlock()

	for _, subs := range all {
		for _, sub := range subs {
			sub.Close()
		}
	}
}

// Tracked melaporkan jumlah order yang masih punya stream aktif.
func (r *Registry) Tracked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}
