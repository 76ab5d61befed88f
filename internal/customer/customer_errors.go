package customer

import (
	"net/http"

	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
)

var (
	ErrCustomerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Customer not found",
		http.StatusNotFound,
	)

	ErrEmailAlreadyUsed = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusConflict,
	)

	ErrEmptyUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"Nothing to update",
		http.StatusBadRequest,
	)

	ErrInvalidProfile = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid profile data",
		http.StatusBadRequest,
	)
)
