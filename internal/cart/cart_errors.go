package cart

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
)

var (
	ErrInvalidItem = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid cart item",
		http.StatusBadRequest,
	)

	ErrSizeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Please select a size",
		http.StatusBadRequest,
	)
)

// mapValidationError turns validator failures into ErrInvalidItem with a
// message naming the offending fields.
func mapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Wrap(ErrInvalidItem, err)
	}
	for _, fe := range verrs {
		if fe.Field() == "Size" && fe.Tag() == "required" {
			return ErrSizeRequired
		}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field())+" "+fe.Tag())
	}
	return apperror.Wrap(apperror.WithMessage(ErrInvalidItem, "Invalid cart item: "+strings.Join(fields, ", ")), err)
}
