package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-client/client"
	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// staticTokens meniru auth store yang sudah login.
type staticTokens struct {
	token string
}

func (s staticTokens) AccessToken() (string, bool) {
	return s.token, s.token != ""
}

func newGateway(t *testing.T, handler http.Handler, opts ...client.Option) *client.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return client.New(server.URL+"/api", 5*time.Second, opts...)
}

func apiRouter() *gin.Engine {
	router := gin.New()
	return router
}

func TestGetAllProducts(t *testing.T) {
	router := apiRouter()
	router.GET("/api/menu/products/getAll", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"productId": 1, "name": "Pho bo", "price": 75000, "image": nil,
				"category": gin.H{"categoryId": 1, "name": "Do an"}},
			{"productId": 2, "name": "Tra da", "price": 10000, "image": "tra.jpg",
				"category": gin.H{"categoryId": 2, "name": "Do uong"}},
		})
	})

	gateway := newGateway(t, router)
	products, err := gateway.GetAllProducts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "Pho bo", products[0].Name)
	assert.Nil(t, products[0].Image)
	assert.Equal(t, "tra.jpg", *products[1].Image)
}

func TestGetAllProductsDecodeError(t *testing.T) {
	router := apiRouter()
	router.GET("/api/menu/products/getAll", func(c *gin.Context) {
		c.String(http.StatusOK, `{"bukan":"array"}`)
	})

	gateway := newGateway(t, router)
	_, err := gateway.GetAllProducts(context.Background())

	var apiErr *client.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindDecode, apiErr.Kind)
}

func TestBusinessErrorMessageSurfaced(t *testing.T) {
	router := apiRouter()
	router.POST("/api/orders/create", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Session expired, please scan again"})
	})

	gateway := newGateway(t, router)
	_, err := gateway.CreateOrder(context.Background(), models.CreateOrderRequest{
		SessionID:   "sess-mati",
		TableNumber: 7,
		Total:       150000,
		Items:       []models.CreateOrderItem{{ProductID: 1, Quantity: 1}},
	})

	var apiErr *client.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindBusiness, apiErr.Kind)
	assert.Contains(t, apiErr.Message, "Session expired")

	// Lapisan translasi memetakan pesan backend ke kalimat user
	assert.Contains(t, client.TranslateError(err), "quét lại mã QR")
}

func TestTransportErrorTranslated(t *testing.T) {
	gateway := client.New("http://127.0.0.1:1", time.Second)
	_, err := gateway.GetAllProducts(context.Background())

	var apiErr *client.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindTransport, apiErr.Kind)
	assert.True(t, apiErr.Temporary())
	assert.Contains(t, client.TranslateError(err), "kiểm tra mạng")
}

func TestCreateOrderAttachesBearerWhenLoggedIn(t *testing.T) {
	var gotAuth string
	router := apiRouter()
	router.POST("/api/orders/create", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		c.JSON(http.StatusCreated, gin.H{
			"orderId": 42, "customerName": "A", "tableNumber": 7,
			"totalAmount": 150000, "orderTime": "2025-03-01T12:00:00Z",
			"status": "PENDING", "items": []gin.H{},
		})
	})

	gateway := newGateway(t, router, client.WithTokenProvider(staticTokens{token: "token-abc"}))
	order, err := gateway.CreateOrder(context.Background(), models.CreateOrderRequest{
		SessionID:   "sess-a",
		TableNumber: 7,
		Total:       150000,
		Items:       []models.CreateOrderItem{{ProductID: 1, Quantity: 2}},
	})

	assert.NoError(t, err)
	assert.Equal(t, 42, order.OrderID)
	assert.Equal(t, "Bearer token-abc", gotAuth)
}

func TestUserOrdersRequireAuth(t *testing.T) {
	router := apiRouter()
	gateway := newGateway(t, router) // tanpa token provider

	_, err := gateway.GetUserOrders(context.Background(), 12)

	var apiErr *client.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestOrderNotFoundFlagged(t *testing.T) {
	router := apiRouter()
	router.GET("/api/orders/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
	})

	gateway := newGateway(t, router)
	_, err := gateway.GetOrder(context.Background(), 99)

	var apiErr *client.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.NotFound())
}

func TestGetActiveBankAccountObject(t *testing.T) {
	router := apiRouter()
	router.GET("/api/banks/active", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id": 1, "bankName": "VCB", "accountNumber": "00112233",
			"accountHolder": "YENHA FOOD", "qrCodeImageUrl": "qr.png", "status": "ACTIVE",
		})
	})

	gateway := newGateway(t, router)
	account, err := gateway.GetActiveBankAccount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "VCB", account.BankName)
}

// Backend kadang menjawab array; ambil elemen pertama.
func TestGetActiveBankAccountArrayTolerated(t *testing.T) {
	router := apiRouter()
	router.GET("/api/banks/active", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"id": 1, "bankName": "VCB", "accountNumber": "00112233",
				"accountHolder": "YENHA FOOD", "qrCodeImageUrl": "", "status": "ACTIVE"},
		})
	})

	gateway := newGateway(t, router)
	account, err := gateway.GetActiveBankAccount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "00112233", account.AccountNumber)
}

func TestGetActiveBankAccountRejectsInactive(t *testing.T) {
	router := apiRouter()
	router.GET("/api/banks/active", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id": 1, "bankName": "VCB", "accountNumber": "00112233",
			"accountHolder": "YENHA FOOD", "qrCodeImageUrl": "", "status": "INACTIVE",
		})
	})

	gateway := newGateway(t, router)
	_, err := gateway.GetActiveBankAccount(context.Background())

	var apiErr *client.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindBusiness, apiErr.Kind)
}

// Promo minOrderAmount 100000 vs keranjang 80000: harus error "minimal
// order" yang spesifik, bukan pesan generik.
func TestPromotionMinOrderRejectedClientSide(t *testing.T) {
	router := apiRouter()
	router.GET("/api/promotions/active", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"promotionId": 1, "code": "GIAM10", "discountPercentage": 10,
				"minOrderAmount": 100000, "remainingCount": 5, "status": "ACTIVE"},
		})
	})

	gateway := newGateway(t, router)
	_, err := gateway.CheckPromotionCode(context.Background(), "GIAM10", 80000)

	var minOrder *client.MinOrderError
	assert.ErrorAs(t, err, &minOrder)
	assert.Equal(t, float64(100000), minOrder.Required)
	assert.Contains(t, client.TranslateError(err), "100.000 VNĐ")

	// Total yang cukup lolos pre-check
	promo, err := gateway.CheckPromotionCode(context.Background(), "giam10", 120000)
	assert.NoError(t, err)
	assert.Equal(t, "GIAM10", promo.Code)
}

func TestPromotionExhaustedAndUnknown(t *testing.T) {
	router := apiRouter()
	router.GET("/api/promotions/active", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"promotionId": 2, "code": "HETLUOT", "discountPercentage": 20,
				"minOrderAmount": 0, "remainingCount": 0, "status": "ACTIVE"},
		})
	})

	gateway := newGateway(t, router)

	_, err := gateway.CheckPromotionCode(context.Background(), "HETLUOT", 500000)
	assert.ErrorIs(t, err, client.ErrPromotionExhausted)

	_, err = gateway.CheckPromotionCode(context.Background(), "NGAUNHIEN", 500000)
	assert.ErrorIs(t, err, client.ErrPromotionNotFound)
}

// Mesin saran mati total -> tetap dapat saran dari katalog lokal.
func TestSuggestDishesFallsBackOnError(t *testing.T) {
	router := apiRouter()
	router.POST("/api/ai/suggestion", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "model unavailable"})
	})

	catalog := []models.Product{
		{ProductID: 1, Name: "Pho bo", Price: 75000, Category: models.Category{CategoryID: 1, Name: "Do an"}},
		{ProductID: 2, Name: "Goi cuon", Price: 35000, Category: models.Category{CategoryID: 3, Name: "Do an them"}},
		{ProductID: 3, Name: "Tra da", Price: 10000, Category: models.Category{CategoryID: 2, Name: "Do uong"}},
	}

	gateway := newGateway(t, router)
	suggested := gateway.SuggestDishes(context.Background(), "doi qua", catalog)

	assert.True(t, suggested.Fallback)
	assert.Len(t, suggested.Dishes, 3)
	assert.NotEmpty(t, suggested.Reason)
}

func TestSuggestDishesMapsNamesToCatalog(t *testing.T) {
	router := apiRouter()
	router.POST("/api/ai/suggestion", func(c *gin.Context) {
		var req models.SuggestionRequest
		assert.NoError(t, c.ShouldBindJSON(&req))
		c.JSON(http.StatusOK, gin.H{
			"main_dish": "PHO BO",      // exact, beda kapital
			"side_dish": "cuon",        // partial
			"drink":     "Nuoc suoi x", // tidak ada di katalog
			"reason":    "Mon nong hop voi troi mua",
		})
	})

	catalog := []models.Product{
		{ProductID: 1, Name: "Pho bo", Price: 75000, Category: models.Category{CategoryID: 1, Name: "Do an"}},
		{ProductID: 2, Name: "Goi cuon", Price: 35000, Category: models.Category{CategoryID: 3, Name: "Do an them"}},
	}

	gateway := newGateway(t, router)
	suggested := gateway.SuggestDishes(context.Background(), "thich mon nong", catalog)

	assert.False(t, suggested.Fallback)
	assert.Len(t, suggested.Dishes, 2)
	assert.Equal(t, "Pho bo", suggested.Dishes[0].Name)
	assert.Equal(t, "Goi cuon", suggested.Dishes[1].Name)
	assert.Equal(t, "Mon nong hop voi troi mua", suggested.Reason)
}

func TestSubmitRatingMultipart(t *testing.T) {
	var gotAuth, gotStars, gotComment string
	var gotPhoto bool

	router := apiRouter()
	router.POST("/api/ratings/:orderId", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		gotStars = c.PostForm("stars")
		gotComment = c.PostForm("comment")
		_, err := c.FormFile("photo")
		gotPhoto = err == nil
		c.JSON(http.StatusCreated, gin.H{"message": "rating saved"})
	})

	gateway := newGateway(t, router, client.WithTokenProvider(staticTokens{token: "token-abc"}))
	err := gateway.SubmitRating(context.Background(), 42, client.RatingSubmission{
		Stars:     5,
		Comment:   "Ngon!",
		PhotoName: "mon.jpg",
		Photo:     strings.NewReader("fake-image-bytes"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Equal(t, "5", gotStars)
	assert.Equal(t, "Ngon!", gotComment)
	assert.True(t, gotPhoto)
}

func TestSubmitRatingValidatesStars(t *testing.T) {
	gateway := client.New("http://unused", time.Second,
		client.WithTokenProvider(staticTokens{token: "token-abc"}))

	err := gateway.SubmitRating(context.Background(), 42, client.RatingSubmission{Stars: 0})
	var apiErr *client.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindBusiness, apiErr.Kind)
}

func TestCreateTableSession(t *testing.T) {
	router := apiRouter()
	router.POST("/api/session/:tableNumber", func(c *gin.Context) {
		assert.Equal(t, "7", c.Param("tableNumber"))
		c.JSON(http.StatusOK, gin.H{"sessionId": "sess-qr-7", "tableNumber": 7})
	})

	gateway := newGateway(t, router)
	resp, err := gateway.CreateTableSession(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "sess-qr-7", resp.SessionID)
	assert.Equal(t, 7, resp.TableNumber)
}
