package responses

import (
	"labdesk-service/internal/app/models"
)

type OrderDraftDerived struct {
	TotalCost              float64 `json:"total_cost"`
	MaxProcessingTimeHours int     `json:"max_processing_time_hours"`
	UrgentTestCount        int     `json:"urgent_test_count"`
	ExpectedDeliveryDate   string  `json:"expected_delivery_date"`
}

type OrderDraftSession struct {
	SessionID           string                     `json:"session_id"`
	Step                string                     `json:"step"`
	StepNumber          int                        `json:"step_number"`
	Patient             *models.PatientRef         `json:"patient,omitempty"`
	Clinician           *models.ClinicianRef       `json:"clinician,omitempty"`
	SelectedTests       []models.SelectedTestEntry `json:"selected_tests"`
	Priority            models.OrderPriority       `json:"priority"`
	CollectionDate      string                     `json:"collection_date,omitempty"`
	ClinicalNotes       string                     `json:"clinical_notes,omitempty"`
	UrgentJustification string                     `json:"urgent_justification,omitempty"`
	Derived             OrderDraftDerived          `json:"derived"`
}

type SubmittedOrder struct {
	OrderID string              `json:"order_id"`
	Request models.OrderRequest `json:"request"`
}
