package address

import (
	"net/http"

	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
)

var (
	ErrAddressNotFound = apperror.New(
		apperror.CodeNotFound,
		"Address not found",
		http.StatusNotFound,
	)

	ErrInvalidAddress = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid address",
		http.StatusBadRequest,
	)
)
