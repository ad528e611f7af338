package billing

import (
	"time"

	"labdesk-service/internal/app/models"
)

type SessionStep int

const (
	StepBilling SessionStep = iota + 1
	StepPayment
	StepConfirmation
)

func (s SessionStep) String() string {
	switch s {
	case StepBilling:
		return "billing"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	}
	return "unknown"
}

type GateError struct {
	Reason string
}

func (e *GateError) Error() string {
	return "billing gate failed: " + e.Reason
}

const (
	GateLineItemsPresent   = "line_items_present"
	GateAmountNonNegative  = "paying_amount_non_negative"
	GateMethodSelected     = "payment_method_selected"
	GateSessionAtPayment   = "session_at_payment_step"
	GateSessionConfirmable = "session_not_confirmed"
)

// Session is the mutable state of one open billing dialog. Serializable so
// the session store can keep it between requests. Navigation back to the
// billing step never discards inputs.
type Session struct {
	SessionID           string                   `json:"session_id"`
	OrderID             string                   `json:"order_id"`
	Step                SessionStep              `json:"step"`
	Items               []models.BillingLineItem `json:"items"`
	GlobalDiscount      models.Discount          `json:"global_discount"`
	TaxRatePercent      float64                  `json:"tax_rate_percent"`
	Claim               *models.InsuranceClaim   `json:"claim,omitempty"`
	PayingWithInsurance bool                     `json:"paying_with_insurance"`
	Payment             *models.PaymentRecord    `json:"payment,omitempty"`
	CreatedAt           time.Time                `json:"created_at"`
}

func NewSession(sessionID, orderID string, items []models.BillingLineItem, claim *models.InsuranceClaim, taxRatePercent float64, now time.Time) *Session {
	return &Session{
		SessionID:      sessionID,
		OrderID:        orderID,
		Step:           StepBilling,
		Items:          items,
		GlobalDiscount: models.Discount{Kind: models.DiscountFixed, Value: 0},
		TaxRatePercent: taxRatePercent,
		Claim:          claim,
		CreatedAt:      now,
	}
}

// Compute re-derives the breakdown from the session's current inputs.
func (s *Session) Compute() models.BillingComputation {
	items := make([]models.BillingLineItem, len(s.Items))
	for i, item := range s.Items {
		item.LineTotal = ComputeLineTotal(item)
		items[i] = item
	}
	s.Items = items
	return ComputeBilling(s.Items, s.GlobalDiscount, s.TaxRatePercent, s.Claim, s.PayingWithInsurance)
}

func (s *Session) SetItemDiscount(testID string, kind models.DiscountKind, value float64) bool {
	for i := range s.Items {
		if s.Items[i].TestID == testID {
			s.Items[i].DiscountKind = kind
			s.Items[i].DiscountValue = value
			return true
		}
	}
	return false
}

func (s *Session) SetGlobalDiscount(discount models.Discount) {
	s.GlobalDiscount = discount
}

func (s *Session) SetTaxRate(taxRatePercent float64) {
	s.TaxRatePercent = taxRatePercent
}

func (s *Session) SetClaim(claim *models.InsuranceClaim) {
	s.Claim = claim
}

func (s *Session) SetPayingWithInsurance(paying bool) {
	s.PayingWithInsurance = paying
}

// Advance moves Billing -> Payment. The only gate is at least one line item.
func (s *Session) Advance() error {
	switch s.Step {
	case StepBilling:
		if len(s.Items) == 0 {
			return &GateError{Reason: GateLineItemsPresent}
		}
		s.Step = StepPayment
		return nil
	case StepPayment:
		// Payment -> Confirmation happens only through CommitPayment.
		return &GateError{Reason: GateSessionAtPayment}
	default:
		return &GateError{Reason: GateSessionConfirmable}
	}
}

// Back returns to the previous step. All billing inputs are preserved.
func (s *Session) Back() {
	if s.Step == StepPayment {
		s.Step = StepBilling
	}
}

// PreparePayment gates Payment -> Confirmation: a selected method and a
// non-negative amount are required. It builds the payment record without
// mutating the session, so a processor failure after it leaves the session
// unchanged in the Payment step.
func (s *Session) PreparePayment(method models.PaymentMethod, amount float64, now time.Time) (*models.PaymentRecord, error) {
	if s.Step != StepPayment {
		return nil, &GateError{Reason: GateSessionAtPayment}
	}
	if amount < 0 {
		return nil, &GateError{Reason: GateAmountNonNegative}
	}
	if method == "" {
		return nil, &GateError{Reason: GateMethodSelected}
	}

	computation := s.Compute()
	remaining := computation.PatientResponsibility - amount
	if remaining < 0 {
		remaining = 0
	}
	status := models.PaymentStatusPartial
	if amount >= computation.PatientResponsibility {
		status = models.PaymentStatusPaid
	}

	return &models.PaymentRecord{
		OrderID:          s.OrderID,
		Method:           method,
		AmountCharged:    amount,
		RemainingBalance: remaining,
		Status:           status,
		ProcessedAt:      now,
	}, nil
}

// CommitPayment stores a successfully processed payment and completes the
// Payment -> Confirmation transition.
func (s *Session) CommitPayment(record *models.PaymentRecord) {
	s.Payment = record
	s.Step = StepConfirmation
}
