package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/doodle-alley/go-backend/internal/cfg"
	redisrepo "github.com/doodle-alley/go-backend/internal/repository/redis"
	"github.com/doodle-alley/go-backend/internal/usecase"
	"github.com/doodle-alley/go-backend/pkg/clients"
	"github.com/doodle-alley/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	r "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubImagesInfra struct{}

func (stubImagesInfra) UploadImages(_ context.Context, req *usecase.UploadImagesReq) (*usecase.UploadImagesRes, error) {
	urls := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		urls = append(urls, "http://minio/product-images/"+img.Name)
	}
	return usecase.NewUploadImagesRes(urls), nil
}

func (stubImagesInfra) RemoveImages(_ context.Context, _ []string) error { return nil }
func (stubImagesInfra) CleanupImages(_ []string)                         {}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	client := &clients.RedisClient{Client: r.NewClient(&r.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { _ = client.Client.Close() })

	log := logger.NewSlogLogger()
	redisCfg := &cfg.RedisCfg{DeleteMarkTTL: 5 * time.Minute}
	authCfg := &cfg.AuthCfg{
		JWTSecret:       []byte("test-secret"),
		TokenTTL:        time.Hour,
		DefaultUsername: "admin",
		DefaultPassword: "admin123",
	}

	productRepo := redisrepo.NewProductRepo(client, redisCfg, log)
	orderRepo := redisrepo.NewOrderRepo(client, log)
	credsRepo := redisrepo.NewCredentialsRepo(client)

	productUC := usecase.NewProductUC(productRepo, stubImagesInfra{}, log)
	orderUC := usecase.NewOrderUC(orderRepo, productRepo, log)
	catalogUC := usecase.NewCatalogUC(productRepo, log)
	authUC := usecase.NewAuthUC(credsRepo, authCfg, log)

	mux := chi.NewRouter()
	router := NewRouter(mux, log)
	router.Init(productUC, orderUC, catalogUC, authUC)

	return mux
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func loginAdmin(t *testing.T, h http.Handler) string {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/admin/login", "", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.True(t, res.Success)
	require.NotEmpty(t, res.Token)

	return res.Token
}

func createProduct(t *testing.T, h http.Handler, token string, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/products", token, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var res map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	return res["product"]
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/health", "/api/v1/health"} {
		rec := doJSON(t, h, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/admin/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var res StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Success)
	assert.Empty(t, res.Token)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/products"},
		{http.MethodPut, "/api/v1/products/p1"},
		{http.MethodDelete, "/api/v1/products/p1"},
		{http.MethodGet, "/api/v1/orders"},
		{http.MethodPost, "/api/v1/images"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doJSON(t, h, tt.method, tt.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			rec = doJSON(t, h, tt.method, tt.path, "garbage-token", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestProductLifecycle(t *testing.T) {
	h := newTestServer(t)
	token := loginAdmin(t, h)

	product := createProduct(t, h, token, map[string]interface{}{
		"name":        "Crochet Bunny",
		"description": "Soft amigurumi bunny",
		"category":    "toys",
		"price":       24.99,
		"isActive":    true,
	})
	id := product["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Crochet Bunny", product["name"])

	// Публичное чтение без токена.
	rec := doJSON(t, h, http.MethodGet, "/api/v1/products/"+id, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Частичное обновление: только цена, имя не трогаем.
	rec = doJSON(t, h, http.MethodPut, "/api/v1/products/"+id, token, map[string]interface{}{
		"price": 29.99,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 29.99, updated["product"]["price"])
	assert.Equal(t, "Crochet Bunny", updated["product"]["name"])

	rec = doJSON(t, h, http.MethodDelete, "/api/v1/products/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.Success)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/products/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProductValidationErrors(t *testing.T) {
	h := newTestServer(t)
	token := loginAdmin(t, h)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"price": 10}},
		{"negative price", map[string]interface{}{"name": "Bunny", "price": -1}},
		{"sub-cent price", map[string]interface{}{"name": "Bunny", "price": 9.999}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/api/v1/products", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var res ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.NotEmpty(t, res.Error)
		})
	}
}

func TestGetProductNotFound(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/products/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var res ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "product not found", res.Error)
}

func TestCatalogFiltersAndFacets(t *testing.T) {
	h := newTestServer(t)
	token := loginAdmin(t, h)

	createProduct(t, h, token, map[string]interface{}{
		"name": "Crochet Bunny", "category": "toys", "price": 24.99, "isActive": true,
	})
	createProduct(t, h, token, map[string]interface{}{
		"name": "Winter Scarf", "category": "accessories", "price": 34.99, "isActive": true,
	})
	createProduct(t, h, token, map[string]interface{}{
		"name": "Hidden Bear", "category": "toys", "price": 19.99, "isActive": false,
	})

	rec := doJSON(t, h, http.MethodGet, "/api/v1/catalog?category=toys&query=bunny", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Products   []map[string]interface{} `json:"products"`
		Categories []string                 `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	require.Len(t, res.Products, 1)
	assert.Equal(t, "Crochet Bunny", res.Products[0]["name"])
	// Фасеты строятся по всем активным товарам, фильтры их не сужают.
	assert.Equal(t, []string{"accessories", "toys"}, res.Categories)
}

func TestSubmitAndListOrders(t *testing.T) {
	h := newTestServer(t)
	token := loginAdmin(t, h)

	product := createProduct(t, h, token, map[string]interface{}{
		"name": "Crochet Bunny", "category": "toys", "price": 20, "isActive": true,
	})
	id := product["id"].(string)

	// Оформление заказа публично, снимок товара восстанавливается сервером.
	rec := doJSON(t, h, http.MethodPost, "/api/v1/orders", "", map[string]interface{}{
		"productId":       id,
		"customerName":    "Maria",
		"phoneNumber":     "+7 900 000-00-00",
		"deliveryAddress": "Somewhere 5",
		"quantity":        3,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var submitted map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submitted))
	assert.Equal(t, "Crochet Bunny", submitted["order"]["productName"])
	assert.Equal(t, 60.0, submitted["order"]["totalPrice"])

	rec = doJSON(t, h, http.MethodGet, "/api/v1/orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Orders []map[string]interface{} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed.Orders, 1)
}

func TestSubmitOrderValidationError(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/orders", "", map[string]interface{}{
		"productId":       "p1",
		"phoneNumber":     "+7 900 000-00-00",
		"deliveryAddress": "Somewhere 5",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var res ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "customer name is required", res.Error)
}

func TestUploadImagesRejectsJSONBody(t *testing.T) {
	h := newTestServer(t)
	token := loginAdmin(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/images", token, map[string]string{"name": "bunny"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
