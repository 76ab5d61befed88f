package order

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/shopspring/decimal"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/money"
)

var mutedText = color.Color{Red: 110, Green: 110, Blue: 110}

// pdf fonts are latin-1 only, so amounts use "Rs." instead of the rupee sign.
func rupees(amount int64) string {
	return "Rs. " + strings.TrimPrefix(money.FormatDecimal(decimal.NewFromInt(amount)), "₹")
}

func renderInvoice(o model.Order) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{
				Size:  20,
				Style: consts.Bold,
			})
		})
	})

	m.Row(8, func() {
		m.Col(6, func() {
			m.Text("PAPERID", props.Text{
				Size:  12,
				Style: consts.Bold,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Order %s", o.ID), props.Text{
				Size:  10,
				Style: consts.Bold,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("hello@paperid.in", props.Text{
				Size:  9,
				Color: mutedText,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", o.Date), props.Text{
				Size:  9,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Tracking: %s", o.TrackingNumber), props.Text{
				Size:  9,
				Align: consts.Right,
				Color: mutedText,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(6, func() {
		header := func(width uint, label string, align consts.Align) {
			m.Col(width, func() {
				m.Text(label, props.Text{
					Size:  9,
					Style: consts.Bold,
					Align: align,
				})
			})
		}
		header(6, "Item", consts.Left)
		header(2, "Qty", consts.Right)
		header(2, "Price", consts.Right)
		header(2, "Total", consts.Right)
	})

	for _, it := range o.Items {
		item := it
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(fmt.Sprintf("%s (%s / %s)", item.Name, item.Size, item.Color), props.Text{Size: 9})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(rupees(item.Price), props.Text{Size: 9, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(rupees(item.Subtotal()), props.Text{Size: 9, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("TOTAL", props.Text{
				Size:  10,
				Style: consts.Bold,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(rupees(o.Total), props.Text{
				Size:  10,
				Style: consts.Bold,
				Align: consts.Right,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
