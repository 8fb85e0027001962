package events

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/utils"
)

// Nama event yang dikirim backend di kedua stream.
const (
	eventConnected     = "connected"
	eventHeartbeat     = "heartbeat"
	eventPaymentStatus = "payment-status"
	eventOrderStatus   = "order-status-changed"
)

// ErrStreamDropped dilaporkan lewat onError saat koneksi putus dan jatah
// reconnect habis (atau reconnect memang tidak diaktifkan). Setelah ini
// stream mati sampai pemiliknya subscribe ulang.
var ErrStreamDropped = errors.New("event stream dropped")

type Option func(*Bridge)

// WithHTTPClient mengganti transport stream (dipakai test).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(b *Bridge) { b.httpClient = httpClient }
}

// WithReconnect mengaktifkan reconnect dengan backoff eksponensial:
// maksimal maxAttempts percobaan, jeda awal base. Default mati, meniru
// perilaku stream yang dibiarkan putus sampai UI subscribe ulang.
func WithReconnect(maxAttempts int, base time.Duration) Option {
	return func(b *Bridge) {
		b.maxReconnect = maxAttempts
		b.reconnectBase = base
	}
}

// Bridge membuka stream SSE per order.
type Bridge struct {
	baseURL       string
	httpClient    *http.Client
	maxReconnect  int
	reconnectBase time.Duration
}

// NewBridge membuat bridge untuk base URL backend (termasuk prefix /api).
// httpClient default TANPA timeout total: timeout membunuh stream yang
// sehat; pembatalan lewat context saja.
func NewBridge(baseURL string, opts ...Option) *Bridge {
	b := &Bridge{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{},
		reconnectBase: time.Second,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SubscribePayment membuka stream pembayaran satu order.
// Hanya status SUCCESS yang memicu onSuccess; status lain dicatat dan
// diabaikan (belum ada jalur UI untuk pembayaran gagal/parsial).
// Kegagalan parse payload dilaporkan ke onError tanpa mematikan stream.
func (b *Bridge) SubscribePayment(ctx context.Context, orderID int, onSuccess func(models.PaymentEvent), onError func(error)) *Subscription {
	path := fmt.Sprintf("/payment/events/%d", orderID)

	return b.subscribe(ctx, path, onError, func(event string, data []byte) {
		if event != eventPaymentStatus {
			return
		}

		var payment models.PaymentEvent
		if err := models.DecodeStrict(data, &payment, "payment event"); err != nil {
			onError(err)
			return
		}

		if !payment.Success() {
			utils.InfoLogger.Printf("Order %d: status pembayaran %s diabaikan", orderID, payment.Status)
			return
		}
		onSuccess(payment)
	})
}

// SubscribeOrderStatus membuka stream status satu order. SETIAP
// perubahan status diteruskan ke onChange, bukan cuma yang terminal;
// caller yang memutuskan kapan berhenti melacak.
func (b *Bridge) SubscribeOrderStatus(ctx context.Context, orderID int, onChange func(models.Order), onError func(error)) *Subscription {
	path := fmt.Sprintf("/orders/%d/stream", orderID)

	return b.subscribe(ctx, path, onError, func(event string, data []byte) {
		if event != eventOrderStatus {
			return
		}

		var order models.Order
		if err := models.DecodeStrict(data, &order, "order status event"); err != nil {
			onError(err)
			return
		}
		onChange(order)
	})
}

// subscribe menjalankan goroutine pembaca stream dan mengembalikan
// pegangannya. Event connected/heartbeat ditelan di sini.
func (b *Bridge) subscribe(parent context.Context, path string, onError func(error), handle func(event string, data []byte)) *Subscription {
	ctx, cancel := context.WithCancel(parent)
	sub := newSubscription(cancel)

	go func() {
		defer sub.finish()

		for attempt := 0; ; attempt++ {
			err := b.readStream(ctx, path, sub, handle)
			if err == nil || ctx.Err() != nil {
				// Ditutup lewat Close() atau context pemilik
				return
			}

			if attempt >= b.maxReconnect {
				utils.ErrorLogger.Printf("Stream %s putus: %v", path, err)
				onError(fmt.Errorf("%w: %v", ErrStreamDropped, err))
				return
			}

			// Backoff eksponensial sebelum percobaan berikutnya
			delay := b.reconnectBase << attempt
			utils.InfoLogger.Printf("Stream %s putus, coba lagi dalam %s: %v", path, delay, err)
			sub.setState(StateConnecting)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return
			}
		}
	}()

	return sub
}

// readStream membuka satu koneksi SSE dan membacanya sampai putus.
// Mengembalikan nil hanya kalau pembacaan berakhir karena context.
func (b *Bridge) readStream(ctx context.Context, path string, sub *Subscription, handle func(event string, data []byte)) error {
	sub.setState(StateConnecting)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stream returned status %d", resp.StatusCode)
	}

	sub.setState(StateOpen)

	var eventName string
	var data []byte

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			// Baris kosong menutup satu event
			if len(data) > 0 {
				b.dispatch(eventName, data, handle)
			}
			eventName = ""
			data = nil
		case strings.HasPrefix(line, ":"):
			// Komentar keep-alive, abaikan
		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			chunk := strings.TrimPrefix(line, "data:")
			chunk = strings.TrimPrefix(chunk, " ")
			if len(data) > 0 {
				data = append(data, '\n')
			}
			data = append(data, chunk...)
		}
		// Field lain (id:, retry:) tidak dipakai kontrak ini
	}

	if ctx.Err() != nil {
		return nil
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return errors.New("stream closed by server")
}

func (b *Bridge) dispatch(eventName string, data []byte, handle func(event string, data []byte)) {
	switch eventName {
	case eventConnected:
		utils.InfoLogger.Debugf("Stream tersambung: %s", string(data))
	case eventHeartbeat:
		utils.InfoLogger.Debugf("Heartbeat stream")
	default:
		handle(eventName, data)
	}
}
