package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict")
	ErrTimeout            = errors.New("timed out")
	ErrRemote             = errors.New("backend failure")
)

// Error is the failure shape of every Gateway call.
type Error struct {
	Op      string
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gateway %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsAuthError reports a rejected login.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsNotAuthenticated(err error) bool {
	return errors.Is(err, ErrNotAuthenticated)
}

func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsConflict reports a request the backend has already seen, such as an
// order submitted twice with the same idempotency key.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// classify turns a backend status and error body into an *Error. Both the
// mock and the HTTP client go through it so their failures look the same.
func classify(op string, status int, code, message string) *Error {
	e := &Error{Op: op, Status: status, Code: code, Message: message}
	switch {
	case status == http.StatusUnauthorized && op == opLogin:
		e.Err = ErrInvalidCredentials
	case status == http.StatusUnauthorized:
		e.Err = ErrNotAuthenticated
	case status == http.StatusNotFound:
		e.Err = ErrNotFound
	case status == http.StatusConflict:
		e.Err = ErrConflict
	case status == http.StatusGatewayTimeout:
		e.Err = ErrTimeout
	case status >= 400 && status < 500:
		e.Err = ErrInvalidInput
	default:
		e.Err = ErrRemote
	}
	return e
}

// fromService maps an error returned by an in-process backend service.
func fromService(op string, err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := contextError(op, err); ctxErr != nil {
		return ctxErr
	}
	httpErr := apperror.ToHTTP(err)
	return classify(op, httpErr.Status, httpErr.Code, httpErr.Message)
}

// contextError wraps cancellation and deadline expiry, or returns nil when
// err is neither.
func contextError(op string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Op: op, Message: "deadline exceeded", Err: fmt.Errorf("%w: %w", ErrTimeout, err)}
	case errors.Is(err, context.Canceled):
		return &Error{Op: op, Message: "cancelled", Err: err}
	}
	return nil
}

const (
	opListProducts   = "ListProducts"
	opGetProduct     = "GetProduct"
	opListCategories = "ListCategories"
	opLogin          = "Login"
	opLogout         = "Logout"
	opGetProfile     = "GetProfile"
	opUpdateProfile  = "UpdateProfile"
	opListAddresses  = "ListAddresses"
	opAddAddress     = "AddAddress"
	opRemoveAddress  = "RemoveAddress"
	opListPayments   = "ListPayments"
	opAddPayment     = "AddPayment"
	opRemovePayment  = "RemovePayment"
	opCreateOrder    = "CreateOrder"
	opTrackOrder     = "TrackOrder"
	opUploadArtwork  = "UploadArtwork"
)
