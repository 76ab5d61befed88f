package product

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/response"
)

type Handler struct {
	productService Service
}

func NewHandler(productService Service) *Handler {
	return &Handler{productService: productService}
}

// GET /products?category=Anime&q=naruto
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid query", err.Error())
		return
	}

	data, err := h.productService.List(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, data, gin.H{"total": len(data)})
}

// GET /products/:id
func (h *Handler) GetByID(c *gin.Context) {
	data, err := h.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, data, nil)
}

// GET /categories
func (h *Handler) Categories(c *gin.Context) {
	data, err := h.productService.Categories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, data, nil)
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}
