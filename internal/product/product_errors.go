package product

import (
	"net/http"

	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
)

var ErrProductNotFound = apperror.New(
	apperror.CodeNotFound,
	"Product not found",
	http.StatusNotFound,
)
