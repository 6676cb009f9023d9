package models

import "github.com/shopspring/decimal"

// Customer is the customer reference carried by an order. It is absent on
// guest checkouts.
type Customer struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// NoteAttribute is a free-form name/value pair attached to an order at
// checkout.
type NoteAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DiscountApplication describes one discount applied to an order.
type DiscountApplication struct {
	Type             string `json:"type"`
	Description      string `json:"description"`
	Value            string `json:"value"`
	ValueType        string `json:"value_type"`
	AllocationMethod string `json:"allocation_method"`
}

// LineItem is one purchased item of an order.
type LineItem struct {
	ID        int64  `json:"id"`
	VariantID int64  `json:"variant_id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// Order is the orders/created webhook payload. Money amounts arrive as
// decimal strings and are parsed only where they are consumed.
type Order struct {
	ID                   int64                 `json:"id"`
	Name                 string                `json:"name"`
	Email                string                `json:"email"`
	TotalPrice           string                `json:"total_price"`
	FinancialStatus      string                `json:"financial_status,omitempty"`
	Note                 string                `json:"note,omitempty"`
	Customer             *Customer             `json:"customer"`
	NoteAttributes       []NoteAttribute       `json:"note_attributes"`
	DiscountApplications []DiscountApplication `json:"discount_applications"`
	TotalDiscounts       string                `json:"total_discounts"`
	LineItems            []LineItem            `json:"line_items"`
}

// OrderSummary is the outcome of processing one order through the points
// pipeline. PointsDebited is the clamped amount actually subtracted.
type OrderSummary struct {
	Order           string
	Customer        int64
	PointsDebited   decimal.Decimal
	PointsAdded     decimal.Decimal
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
}
