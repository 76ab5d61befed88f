package wishlist

import (
	"net/http"

	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
)

var ErrInvalidProductID = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid product ID",
	http.StatusBadRequest,
)
