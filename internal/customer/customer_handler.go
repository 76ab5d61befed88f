package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("customer.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("customer.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) GetProfile(c *gin.Context) {
	customerID := c.GetString("user_id_validated")
	if customerID == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "User not authenticated", nil)
		return
	}

	res, err := h.service.GetProfile(c.Request.Context(), customerID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	customerID := c.GetString("user_id_validated")
	if customerID == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "User not authenticated", nil)
		return
	}

	var req model.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := h.service.UpdateProfile(c.Request.Context(), customerID, req)
	if err != nil {
		h.logger.Warn("http update profile failed", zap.String("user_id", customerID), zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
