package storefront

import (
	"net/http"

	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrSizeNotOffered = apperror.New(
		apperror.CodeInvalidInput,
		"Size not available for this product",
		http.StatusBadRequest,
	)

	ErrColorNotOffered = apperror.New(
		apperror.CodeInvalidInput,
		"Color not available for this product",
		http.StatusBadRequest,
	)

	ErrNotCustomizable = apperror.New(
		apperror.CodeInvalidInput,
		"This product cannot be customized",
		http.StatusBadRequest,
	)
)
