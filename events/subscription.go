// Package events mendengarkan stream SSE backend per order: satu stream
// status pembayaran dan satu stream status order. Satu subscription per
// order; teardown WAJIB menutup transportnya supaya tidak ada koneksi
// bocor.
package events

import (
	"context"
	"sync"
	"sync/atomic"
)

// State siklus hidup subscription: CONNECTING -> OPEN -> CLOSED.
// CLOSED hanya tercapai lewat Close() atau error transport yang tidak
// bisa dipulihkan.
type State int32

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "CONNECTING"
	case StateOpen:
		return "OPEN"
	case StateClosed:
		return "CLOSED"
	}
	return "UNKNOWN"
}

// Subscription adalah pegangan satu stream SSE yang sedang berjalan.
type Subscription struct {
	state  atomic.Int32
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func newSubscription(cancel context.CancelFunc) *Subscription {
	return &Subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

func (s *Subscription) State() State {
	return State(s.state.Load())
}

// Close menutup transport secara deterministik lewat pembatalan context;
// idempoten dan aman dipanggil dari dalam callback (tidak menunggu).
// Pakai Done() kalau perlu menunggu goroutine pembaca benar-benar
// berhenti.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.cancel()
	})
}

// Done tertutup saat goroutine pembaca berhenti.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) setState(state State) {
	s.state.Store(int32(state))
}

func (s *Subscription) finish() {
	s.setState(StateClosed)
	close(s.done)
}
