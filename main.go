package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/yeremiapane/restaurant-client/client"
	"github.com/yeremiapane/restaurant-client/config"
	"github.com/yeremiapane/restaurant-client/events"
	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/orders"
	"github.com/yeremiapane/restaurant-client/services"
	"github.com/yeremiapane/restaurant-client/session"
	"github.com/yeremiapane/restaurant-client/storage"
	"github.com/yeremiapane/restaurant-client/utils"

	authstore "github.com/yeremiapane/restaurant-client/auth"
)

func init() {
	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

// Demo alur pemesanan dari terminal: scan meja -> lihat menu -> buat
// order -> tunggu konfirmasi pembayaran lewat stream.
func main() {
	table := flag.Int("table", 1, "nomor meja yang di-scan")
	demand := flag.String("demand", "", "minta saran menu, contoh: \"thich mon cay\"")
	flag.Parse()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Store tab-scoped untuk sesi + cache unpaid, store persisten untuk auth
	tab := storage.NewMemoryStore()
	local, err := storage.OpenGormStore(cfg.LocalStorePath)
	if err != nil {
		utils.ErrorLogger.Fatalf("Gagal membuka local store: %v", err)
	}

	sessions := session.New(tab, session.WithTTL(cfg.SessionTTL))
	accounts := authstore.New(local, authstore.WithTTL(cfg.AuthTTL))
	gateway := client.New(cfg.APIBaseURL, cfg.HTTPTimeout, client.WithTokenProvider(accounts))
	bridge := events.NewBridge(cfg.APIBaseURL, events.WithReconnect(5, time.Second))
	cache := orders.NewCache(tab)

	// 1. Scan QR -> sesi meja 30 menit
	resp, err := gateway.CreateTableSession(ctx, *table)
	if err != nil {
		utils.ErrorLogger.Fatalf("Gagal membuat sesi meja: %s", client.TranslateError(err))
	}
	sess := sessions.Create(resp.SessionID, resp.TableNumber)
	utils.InfoLogger.Printf("Sesi %s untuk meja %d, sisa %s",
		sess.SessionID, sess.TableNumber, sessions.RemainingTime().Round(time.Second))

	// 2. Ambil menu
	products, err := gateway.GetAllProducts(ctx)
	if err != nil {
		utils.ErrorLogger.Fatalf("Gagal memuat menu: %s", client.TranslateError(err))
	}
	if len(products) == 0 {
		utils.ErrorLogger.Fatal("Menu kosong")
	}
	for i, p := range products {
		if i == 10 {
			break
		}
		utils.InfoLogger.Printf("  [%d] %s (%s) - %s",
			p.ProductID, p.Name, p.Category.Name, utils.FormatPrice(p.Price))
	}

	// Saran menu best effort kalau diminta
	if *demand != "" {
		suggested := gateway.SuggestDishes(ctx, *demand, products)
		utils.InfoLogger.Printf("Saran: %s", suggested.Reason)
		for _, dish := range suggested.Dishes {
			utils.InfoLogger.Printf("  -> %s (%s)", dish.Name, utils.FormatPrice(dish.Price))
		}
	}

	// 3. Pesan produk pertama sebagai contoh
	pick := products[0]
	order, err := gateway.CreateOrder(ctx, models.CreateOrderRequest{
		SessionID:   sess.SessionID,
		TableNumber: sess.TableNumber,
		Total:       pick.Price,
		Items: []models.CreateOrderItem{
			{ProductID: pick.ProductID, Quantity: 1},
		},
	})
	if err != nil {
		utils.ErrorLogger.Fatalf("Gagal membuat order: %s", client.TranslateError(err))
	}

	// 4. Lacak sampai pembayaran terkonfirmasi
	paid := make(chan models.PaymentEvent, 1)
	tracker := services.NewOrderTracker(cache, bridge, sessions, gateway, services.Callbacks{
		OnPaid: func(orderID int, event models.PaymentEvent) {
			paid <- event
		},
		OnStatus: func(order models.Order) {
			utils.InfoLogger.Printf("Order %d -> %s", order.OrderID, order.Status)
		},
	})
	defer tracker.Stop()

	if err := tracker.Track(ctx, *order); err != nil {
		utils.ErrorLogger.Fatalf("Gagal melacak order: %v", err)
	}

	// Tampilkan rekening transfer untuk membayar
	if bank, err := gateway.GetActiveBankAccount(ctx); err == nil {
		utils.InfoLogger.Printf("Transfer ke %s %s a.n. %s", bank.BankName, bank.AccountNumber, bank.AccountHolder)
	}

	select {
	case event := <-paid:
		utils.InfoLogger.Printf("Pembayaran order %d sukses: %s via %s",
			event.OrderID, utils.FormatPrice(event.Amount), event.Gateway)
	case <-time.After(sessions.RemainingTime()):
		utils.InfoLogger.Printf("Sesi meja habis sebelum pembayaran terkonfirmasi")
	case <-ctx.Done():
		utils.InfoLogger.Printf("Dihentikan, %d order masih unpaid", len(tracker.Unpaid()))
	}
}
