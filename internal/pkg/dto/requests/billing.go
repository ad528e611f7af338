package requests

const (
	BillingActionSetItemDiscount   = "set_item_discount"
	BillingActionSetGlobalDiscount = "set_global_discount"
	BillingActionSetTaxRate        = "set_tax_rate"
	BillingActionSetInsurance      = "set_insurance"
	BillingActionToggleInsurance   = "toggle_insurance"
	BillingActionAdvance           = "advance"
	BillingActionBack              = "back"
)

type CreateBillingSession struct {
	OrderID string `json:"order_id" validate:"required"`
}

type DiscountPayload struct {
	Kind  string  `json:"kind" validate:"required,discount_kind"`
	Value float64 `json:"value" validate:"gte=0"`
}

type InsuranceClaimPayload struct {
	CoveragePercentage   float64 `json:"coverage_percentage" validate:"gte=0,lte=100"`
	MaxCoverage          float64 `json:"max_coverage" validate:"gte=0"`
	Deductible           float64 `json:"deductible" validate:"gte=0"`
	PreAuthorizationCode string  `json:"pre_authorization_code"`
}

type BillingSessionUpdate struct {
	Action              string                 `json:"action" validate:"required"`
	TestID              string                 `json:"test_id,omitempty"`
	ItemDiscount        *DiscountPayload       `json:"item_discount,omitempty"`
	GlobalDiscount      *DiscountPayload       `json:"global_discount,omitempty"`
	TaxRatePercent      *float64               `json:"tax_rate_percent,omitempty"`
	Claim               *InsuranceClaimPayload `json:"claim,omitempty"`
	PayingWithInsurance *bool                  `json:"paying_with_insurance,omitempty"`
}

type PayRequest struct {
	Method string  `json:"method" validate:"required,payment_method"`
	Amount float64 `json:"amount" validate:"gte=0"`
}
