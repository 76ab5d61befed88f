package checkout

import (
	"net/http"

	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
)

var ErrCartEmpty = apperror.New(
	apperror.CodeInvalidInput,
	"Your cart is empty",
	http.StatusBadRequest,
)
