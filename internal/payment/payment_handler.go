package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GET /payments
func (ctrl *Handler) List(c *gin.Context) {
	res, err := ctrl.service.List(c.Request.Context(), c.GetString("user_id_validated"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// POST /payments
func (ctrl *Handler) Create(c *gin.Context) {
	var req model.PaymentMethod
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, err.Error(), nil)
		return
	}

	res, err := ctrl.service.Create(c.Request.Context(), c.GetString("user_id_validated"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

// DELETE /payments/:id
func (ctrl *Handler) Delete(c *gin.Context) {
	if err := ctrl.service.Delete(c.Request.Context(), c.GetString("user_id_validated"), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Payment method deleted"}, nil)
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}
