package order

import (
	"net/http"

	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
)

var (
	ErrCartEmpty = apperror.New(
		apperror.CodeInvalidInput,
		"Cart is empty",
		http.StatusBadRequest,
	)

	ErrInvalidItems = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order items",
		http.StatusBadRequest,
	)

	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order status",
		http.StatusBadRequest,
	)

	ErrInvalidTransition = apperror.New(
		apperror.CodeConflict,
		"Order status transition not allowed",
		http.StatusConflict,
	)

	ErrDuplicateOrderID = apperror.New(
		apperror.CodeConflict,
		"Order id already used",
		http.StatusConflict,
	)

	ErrOrderFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to place order",
		http.StatusInternalServerError,
	)

	ErrInvoiceFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to render invoice",
		http.StatusInternalServerError,
	)
)
