package models

import (
	"time"
)

type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

type Discount struct {
	Kind  DiscountKind `json:"kind"`
	Value float64      `json:"value"`
}

// BillingLineItem is one billable unit derived from a single ordered test.
type BillingLineItem struct {
	TestID        string       `json:"test_id"`
	TestName      string       `json:"test_name"`
	UnitPrice     float64      `json:"unit_price"`
	Quantity      int          `json:"quantity"`
	DiscountValue float64      `json:"discount_value"`
	DiscountKind  DiscountKind `json:"discount_kind"`
	LineTotal     float64      `json:"line_total"`
}

type InsuranceClaim struct {
	CoveragePercentage   float64 `json:"coverage_percentage"`
	MaxCoverage          float64 `json:"max_coverage"`
	Deductible           float64 `json:"deductible"`
	PreAuthorizationCode string  `json:"pre_authorization_code,omitempty"`
}

// BillingComputation is the pure pricing output. It is re-derived from current
// inputs on every change and never persisted directly.
type BillingComputation struct {
	Subtotal                float64 `json:"subtotal"`
	GlobalDiscountAmount    float64 `json:"global_discount_amount"`
	TaxAmount               float64 `json:"tax_amount"`
	Total                   float64 `json:"total"`
	InsuranceCoverageAmount float64 `json:"insurance_coverage_amount"`
	PatientResponsibility   float64 `json:"patient_responsibility"`
}

type PaymentMethod string

const (
	PaymentMethodCash      PaymentMethod = "cash"
	PaymentMethodCard      PaymentMethod = "card"
	PaymentMethodTransfer  PaymentMethod = "transfer"
	PaymentMethodInsurance PaymentMethod = "insurance"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
)

type PaymentRecord struct {
	OrderID          string        `json:"order_id"`
	Method           PaymentMethod `json:"method"`
	AmountCharged    float64       `json:"amount_charged"`
	RemainingBalance float64       `json:"remaining_balance"`
	Status           PaymentStatus `json:"status"`
	Reference        string        `json:"reference,omitempty"`
	ProcessedAt      time.Time     `json:"processed_at"`
}
