package responses

import (
	"labdesk-service/internal/app/models"
)

type BillingSessionState struct {
	SessionID           string                    `json:"session_id"`
	OrderID             string                    `json:"order_id"`
	Step                string                    `json:"step"`
	Items               []models.BillingLineItem  `json:"items"`
	GlobalDiscount      models.Discount           `json:"global_discount"`
	TaxRatePercent      float64                   `json:"tax_rate_percent"`
	Claim               *models.InsuranceClaim    `json:"claim,omitempty"`
	PayingWithInsurance bool                      `json:"paying_with_insurance"`
	Computation         models.BillingComputation `json:"computation"`
	Payment             *models.PaymentRecord     `json:"payment,omitempty"`
}

type PaymentResult struct {
	Record      models.PaymentRecord      `json:"record"`
	Computation models.BillingComputation `json:"computation"`
}
