package artwork

import (
	"net/http"

	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
)

var (
	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Artwork file is required",
		http.StatusBadRequest,
	)

	ErrUnsupportedType = apperror.New(
		apperror.CodeInvalidInput,
		"Artwork must be a PNG, JPEG, GIF or WebP image",
		http.StatusUnsupportedMediaType,
	)

	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Artwork exceeds the 5 MB limit",
		http.StatusRequestEntityTooLarge,
	)

	ErrUploadFailed = apperror.New(
		apperror.CodeGateway,
		"Failed to store artwork",
		http.StatusBadGateway,
	)
)
