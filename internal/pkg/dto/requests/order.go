package requests

// Draft transition actions. One PATCH applies exactly one named transition.
const (
	OrderActionSelectPatient          = "select_patient"
	OrderActionSelectClinician        = "select_clinician"
	OrderActionToggleTest             = "toggle_test"
	OrderActionSetTestFlags           = "set_test_flags"
	OrderActionSetPriority            = "set_priority"
	OrderActionSetCollectionDate      = "set_collection_date"
	OrderActionSetClinicalNotes       = "set_clinical_notes"
	OrderActionSetUrgentJustification = "set_urgent_justification"
	OrderActionAdvance                = "advance"
	OrderActionBack                   = "back"
)

type PatientPayload struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	InsuranceID string `json:"insurance_id"`
}

type ClinicianPayload struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Department string `json:"department"`
}

type TestFlagsPayload struct {
	IsUrgent        *bool   `json:"is_urgent"`
	IsStat          *bool   `json:"is_stat"`
	RequiresFasting *bool   `json:"requires_fasting"`
	Notes           *string `json:"notes"`
}

type OrderDraftTransition struct {
	Action              string            `json:"action" validate:"required"`
	Patient             *PatientPayload   `json:"patient,omitempty"`
	Clinician           *ClinicianPayload `json:"clinician,omitempty"`
	TestID              string            `json:"test_id,omitempty"`
	Flags               *TestFlagsPayload `json:"flags,omitempty"`
	Priority            string            `json:"priority,omitempty" validate:"omitempty,priority"`
	CollectionDate      string            `json:"collection_date,omitempty"`
	ClinicalNotes       string            `json:"clinical_notes,omitempty"`
	UrgentJustification string            `json:"urgent_justification,omitempty"`
}
