package product_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrivel962969-dotcom/Paperid/internal/catalog"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/product"
)

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := product.NewHandler(product.NewService(catalog.Default()))
	product.RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func get[T any](t *testing.T, r *gin.Engine, path string) (int, envelope[T]) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var env envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestProductHandler_List(t *testing.T) {
	r := setupRouter()

	t.Run("all", func(t *testing.T) {
		code, env := get[[]model.Product](t, r, "/api/v1/products")
		assert.Equal(t, http.StatusOK, code)
		assert.Len(t, env.Data, 6)
	})

	t.Run("by_category", func(t *testing.T) {
		_, env := get[[]model.Product](t, r, "/api/v1/products?category=Cricket")
		require.Len(t, env.Data, 2)
		assert.Equal(t, "2", env.Data[0].ID)
		assert.Equal(t, "6", env.Data[1].ID)
	})

	t.Run("all_category_is_no_filter", func(t *testing.T) {
		_, env := get[[]model.Product](t, r, "/api/v1/products?category=All")
		assert.Len(t, env.Data, 6)
	})

	t.Run("unknown_category_is_empty", func(t *testing.T) {
		code, env := get[[]model.Product](t, r, "/api/v1/products?category=Vintage")
		assert.Equal(t, http.StatusOK, code)
		assert.NotNil(t, env.Data)
		assert.Empty(t, env.Data)
	})

	t.Run("search", func(t *testing.T) {
		_, env := get[[]model.Product](t, r, "/api/v1/products?q=dhoni")
		require.Len(t, env.Data, 1)
		assert.Equal(t, "6", env.Data[0].ID)
	})
}

func TestProductHandler_GetByID(t *testing.T) {
	r := setupRouter()

	t.Run("found", func(t *testing.T) {
		code, env := get[model.Product](t, r, "/api/v1/products/3")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Akatsuki Cloud Oversized Hoodie", env.Data.Name)
	})

	t.Run("not_found", func(t *testing.T) {
		code, env := get[model.Product](t, r, "/api/v1/products/99")
		assert.Equal(t, http.StatusNotFound, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestProductHandler_Categories(t *testing.T) {
	code, env := get[[]model.CategoryInfo](t, setupRouter(), "/api/v1/categories")
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, env.Data, 5)
	assert.Equal(t, "Anime", env.Data[0].Name)
}
