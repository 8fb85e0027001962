package orders

import (
	"context"
	"errors"
	"sync"

	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/utils"
)

// Fetcher adalah potongan gateway yang dibutuhkan rekonsiliasi.
type Fetcher interface {
	GetOrder(ctx context.Context, orderID int) (*models.Order, error)
}

// notFounder dicocokkan ke error gateway untuk membedakan "order sudah
// tidak dikenal backend" dari gangguan jaringan biasa.
type notFounder interface {
	NotFound() bool
}

// Reconcile mengambil ulang setiap ID di cache dari backend secara
// paralel, membuang yang sudah terminal atau sudah tidak dikenal server,
// dan mengembalikan snapshot segar sisanya dengan urutan cache (terbaru
// dulu). Error transport TIDAK menggugurkan entri: server yang tidak
// terjangkau bukan bukti order sudah dibayar.
func (c *Cache) Reconcile(ctx context.Context, sessionID string, fetcher Fetcher) []models.Order {
	ids := c.List(sessionID)
	if len(ids) == 0 {
		return []models.Order{}
	}

	results := make([]*models.Order, len(ids))
	drop := make([]bool, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()

			order, err := fetcher.GetOrder(ctx, id)
			if err != nil {
				var nf notFounder
				if errors.As(err, &nf) && nf.NotFound() {
					drop[i] = true
				} else {
					utils.ErrorLogger.Printf("Rekonsiliasi order %d gagal: %v", id, err)
				}
				return
			}

			if models.IsTerminalStatus(order.Status) {
				drop[i] = true
				return
			}
			results[i] = order
		}(i, id)
	}
	wg.Wait()

	fresh := make([]models.Order, 0, len(ids))
	for i, id := range ids {
		if drop[i] {
			c.Remove(sessionID, id)
			continue
		}
		if results[i] != nil {
			fresh = append(fresh, *results[i])
		}
	}
	return fresh
}
