package payment

import (
	"net/http"

	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
)

var (
	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payment method not found",
		http.StatusNotFound,
	)

	ErrInvalidPayment = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payment method",
		http.StatusBadRequest,
	)
)
