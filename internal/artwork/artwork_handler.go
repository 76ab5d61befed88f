package artwork

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("artwork.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("artwork.handler")
	}
	return &Handler{service: svc, logger: l}
}

// POST /artwork (multipart field "file")
func (h *Handler) Upload(c *gin.Context) {
	userID := c.GetString("user_id")

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, ErrFileRequired)
		return
	}
	if fh.Size > MaxSize {
		writeError(c, ErrFileTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.logger.Warn("failed to open upload", zap.Error(err))
		writeError(c, ErrFileRequired)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxSize+1))
	if err != nil {
		writeError(c, ErrFileRequired)
		return
	}

	res, err := h.service.Upload(c.Request.Context(), userID, fh.Filename, data)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}
