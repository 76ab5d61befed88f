package model

import (
	"errors"
	"fmt"
)

type Address struct {
	ID      string `json:"id"`
	Title   string `json:"title" validate:"required,max=60"`
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
	Primary bool   `json:"primary"`
}

type PaymentKind string

const (
	PaymentUPI  PaymentKind = "UPI"
	PaymentCard PaymentKind = "CARD"
)

type UPI struct {
	Handle   string `json:"handle" validate:"required,contains=@"`
	Provider string `json:"provider,omitempty"`
}

type Card struct {
	Last4   string `json:"last4" validate:"required,len=4,numeric"`
	Network string `json:"network" validate:"required"`
}

// PaymentMethod is a tagged variant: exactly one of UPI or Card is set and
// it must agree with Kind.
type PaymentMethod struct {
	ID   string      `json:"id"`
	Kind PaymentKind `json:"kind"`
	UPI  *UPI        `json:"upi,omitempty"`
	Card *Card       `json:"card,omitempty"`
}

var ErrInvalidPaymentVariant = errors.New("payment method variant does not match its kind")

func NewUPIPayment(handle, provider string) PaymentMethod {
	return PaymentMethod{Kind: PaymentUPI, UPI: &UPI{Handle: handle, Provider: provider}}
}

func NewCardPayment(last4, network string) PaymentMethod {
	return PaymentMethod{Kind: PaymentCard, Card: &Card{Last4: last4, Network: network}}
}

func (p PaymentMethod) Validate() error {
	switch p.Kind {
	case PaymentUPI:
		if p.UPI == nil || p.Card != nil {
			return ErrInvalidPaymentVariant
		}
	case PaymentCard:
		if p.Card == nil || p.UPI != nil {
			return ErrInvalidPaymentVariant
		}
	default:
		return fmt.Errorf("unknown payment kind %q", p.Kind)
	}
	return nil
}

// Display is the masked label shown on the account page.
func (p PaymentMethod) Display() string {
	switch {
	case p.UPI != nil:
		return p.UPI.Handle
	case p.Card != nil:
		return "**** **** **** " + p.Card.Last4
	}
	return ""
}

func (p PaymentMethod) Clone() PaymentMethod {
	out := p
	if p.UPI != nil {
		v := *p.UPI
		out.UPI = &v
	}
	if p.Card != nil {
		v := *p.Card
		out.Card = &v
	}
	return out
}
