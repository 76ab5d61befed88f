package address_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/vetrivel962969-dotcom/Paperid/internal/address"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
)

type fakeAddressService struct {
	listFunc   func(ctx context.Context, userID string) ([]model.Address, error)
	createFunc func(ctx context.Context, userID string, req model.Address) (model.Address, error)
	deleteFunc func(ctx context.Context, userID, id string) error
}

func (f *fakeAddressService) List(ctx context.Context, userID string) ([]model.Address, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, userID)
	}
	return nil, nil
}

func (f *fakeAddressService) Create(ctx context.Context, userID string, req model.Address) (model.Address, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, userID, req)
	}
	return model.Address{}, nil
}

func (f *fakeAddressService) Delete(ctx context.Context, userID, id string) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, userID, id)
	}
	return nil
}

func TestAddressHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		h := address.NewHandler(&fakeAddressService{
			createFunc: func(ctx context.Context, userID string, req model.Address) (model.Address, error) {
				assert.Equal(t, "1", userID)
				assert.Equal(t, "Office", req.Title)
				req.ID = "a-1"
				return req, nil
			},
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodPost, "/addresses",
			bytes.NewBufferString(`{"title":"Office","street":"1 MG Road","city":"Bengaluru","country":"India"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("user_id_validated", "1")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"a-1"`)
	})

	t.Run("error_validation", func(t *testing.T) {
		h := address.NewHandler(&fakeAddressService{
			createFunc: func(ctx context.Context, userID string, req model.Address) (model.Address, error) {
				return model.Address{}, address.ErrInvalidAddress
			},
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodPost, "/addresses", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("user_id_validated", "1")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAddressHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("error_not_found", func(t *testing.T) {
		h := address.NewHandler(&fakeAddressService{
			deleteFunc: func(ctx context.Context, userID, id string) error {
				assert.Equal(t, "x", id)
				return address.ErrAddressNotFound
			},
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/addresses/x", nil)
		c.Params = gin.Params{{Key: "id", Value: "x"}}
		c.Set("user_id_validated", "1")

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
