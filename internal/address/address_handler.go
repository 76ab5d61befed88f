package address

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

// GET /addresses
func (ctrl *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	res, err := ctrl.service.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// POST /addresses
func (ctrl *Handler) Create(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	var req model.Address
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, err.Error(), nil)
		return
	}

	res, err := ctrl.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

// DELETE /addresses/:id
func (ctrl *Handler) Delete(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	if err := ctrl.service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Address deleted"}, nil)
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}
