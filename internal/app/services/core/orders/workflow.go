package orders

import (
	"strings"
	"time"

	"labdesk-service/internal/app/models"
)

type WorkflowStep int

const (
	StepSelectPatient WorkflowStep = iota + 1
	StepSelectClinician
	StepSelectTests
	StepReviewAndSubmit
	StepSubmitted
)

func (s WorkflowStep) String() string {
	switch s {
	case StepSelectPatient:
		return "select_patient"
	case StepSelectClinician:
		return "select_clinician"
	case StepSelectTests:
		return "select_tests"
	case StepReviewAndSubmit:
		return "review_and_submit"
	case StepSubmitted:
		return "submitted"
	}
	return "unknown"
}

// GuardError reports which step guard blocked a transition. It is recoverable:
// the draft is unchanged and the caller fixes the named precondition.
type GuardError struct {
	Guard string
}

func (e *GuardError) Error() string {
	return "guard failed: " + e.Guard
}

const (
	GuardPatientSelected   = "patient_selected"
	GuardClinicianSelected = "clinician_selected"
	GuardTestsNotEmpty     = "tests_not_empty"
	GuardUrgentJustified   = "urgent_justification_present"
	GuardNotSubmitted      = "not_submitted"
)

// OrderDraft is the mutable workflow state for one open intake session. It is
// serializable so the draft store can autosave it between requests; every
// mutation goes through a named transition below.
type OrderDraft struct {
	SessionID           string                     `json:"session_id"`
	Step                WorkflowStep               `json:"step"`
	Patient             *models.PatientRef         `json:"patient,omitempty"`
	Clinician           *models.ClinicianRef       `json:"clinician,omitempty"`
	SelectedTests       []models.SelectedTestEntry `json:"selected_tests"`
	Priority            models.OrderPriority       `json:"priority"`
	CollectionDate      time.Time                  `json:"collection_date"`
	ClinicalNotes       string                     `json:"clinical_notes,omitempty"`
	UrgentJustification string                     `json:"urgent_justification,omitempty"`
	CreatedAt           time.Time                  `json:"created_at"`
}

func NewOrderDraft(sessionID string, now time.Time) *OrderDraft {
	return &OrderDraft{
		SessionID:      sessionID,
		Step:           StepSelectPatient,
		SelectedTests:  []models.SelectedTestEntry{},
		Priority:       models.PriorityRoutine,
		CollectionDate: now,
		CreatedAt:      now,
	}
}

func (d *OrderDraft) SelectPatient(patient models.PatientRef) {
	d.Patient = &patient
}

func (d *OrderDraft) SelectClinician(clinician models.ClinicianRef) {
	d.Clinician = &clinician
}

// ToggleTest selects the test when absent and removes it when present.
// Selecting an already-selected test is a no-op in effect: no duplicate entry
// is ever created. Removal keeps the relative order of the remaining entries.
func (d *OrderDraft) ToggleTest(test models.LabTest) {
	for i, entry := range d.SelectedTests {
		if entry.Test.ID == test.ID {
			d.SelectedTests = append(d.SelectedTests[:i], d.SelectedTests[i+1:]...)
			return
		}
	}
	d.SelectedTests = append(d.SelectedTests, models.SelectedTestEntry{
		Test:            test,
		RequiresFasting: DeriveRequiresFasting(test),
	})
}

// SetTestFlags updates the mutable flags of an already-selected test. Setting
// RequiresFasting marks a user override; from then on the flag is never
// recomputed from the catalog entry.
func (d *OrderDraft) SetTestFlags(testID string, isUrgent, isStat, requiresFasting *bool, notes *string) bool {
	for i := range d.SelectedTests {
		if d.SelectedTests[i].Test.ID != testID {
			continue
		}
		if isUrgent != nil {
			d.SelectedTests[i].IsUrgent = *isUrgent
		}
		if isStat != nil {
			d.SelectedTests[i].IsStat = *isStat
		}
		if requiresFasting != nil {
			d.SelectedTests[i].RequiresFasting = *requiresFasting
			d.SelectedTests[i].FastingSetByUser = true
		}
		if notes != nil {
			d.SelectedTests[i].Notes = *notes
		}
		return true
	}
	return false
}

func (d *OrderDraft) SetPriority(priority models.OrderPriority) {
	d.Priority = priority
}

func (d *OrderDraft) SetCollectionDate(date time.Time) {
	d.CollectionDate = date
}

func (d *OrderDraft) SetClinicalNotes(notes string) {
	d.ClinicalNotes = notes
}

func (d *OrderDraft) SetUrgentJustification(justification string) {
	d.UrgentJustification = justification
}

// Advance moves to the next step when the current step's guard holds.
func (d *OrderDraft) Advance() error {
	switch d.Step {
	case StepSelectPatient:
		if d.Patient == nil || d.Patient.ID == "" {
			return &GuardError{Guard: GuardPatientSelected}
		}
	case StepSelectClinician:
		if d.Clinician == nil || d.Clinician.ID == "" {
			return &GuardError{Guard: GuardClinicianSelected}
		}
	case StepSelectTests:
		if len(d.SelectedTests) == 0 {
			return &GuardError{Guard: GuardTestsNotEmpty}
		}
	case StepReviewAndSubmit, StepSubmitted:
		// Review is terminal for navigation; only Submit leaves it.
		return &GuardError{Guard: GuardNotSubmitted}
	}
	d.Step++
	return nil
}

// Back is never blocked.
func (d *OrderDraft) Back() {
	if d.Step > StepSelectPatient && d.Step < StepSubmitted {
		d.Step--
	}
}

// Submit validates the whole draft and emits the immutable OrderRequest. The
// urgency justification check is a submit-time validation, not a step guard.
func (d *OrderDraft) Submit(now time.Time) (*models.OrderRequest, error) {
	if d.Step != StepReviewAndSubmit {
		return nil, &GuardError{Guard: GuardNotSubmitted}
	}
	if d.Priority != models.PriorityRoutine && strings.TrimSpace(d.UrgentJustification) == "" {
		return nil, &GuardError{Guard: GuardUrgentJustified}
	}

	tests := make([]models.SelectedTestEntry, len(d.SelectedTests))
	copy(tests, d.SelectedTests)

	request := &models.OrderRequest{
		Patient:                *d.Patient,
		Clinician:              *d.Clinician,
		Tests:                  tests,
		Priority:               d.Priority,
		CollectionDate:         d.CollectionDate,
		ClinicalNotes:          d.ClinicalNotes,
		UrgentJustification:    d.UrgentJustification,
		TotalCost:              d.TotalCost(),
		MaxProcessingTimeHours: d.MaxProcessingTimeHours(),
		UrgentTestCount:        d.UrgentTestCount(),
		ExpectedDeliveryDate:   d.ExpectedDeliveryDate(),
		SubmittedAt:            now,
	}
	d.Step = StepSubmitted
	return request, nil
}

// Reset empties the draft. Called on both submit and cancel.
func (d *OrderDraft) Reset(now time.Time) {
	*d = *NewOrderDraft(d.SessionID, now)
}

func (d *OrderDraft) TotalCost() float64 {
	var total float64
	for _, entry := range d.SelectedTests {
		total += entry.Test.Price
	}
	return total
}

func (d *OrderDraft) MaxProcessingTimeHours() int {
	max := 0
	for _, entry := range d.SelectedTests {
		if entry.Test.ProcessingTimeHours > max {
			max = entry.Test.ProcessingTimeHours
		}
	}
	return max
}

func (d *OrderDraft) UrgentTestCount() int {
	count := 0
	for _, entry := range d.SelectedTests {
		if entry.IsUrgent || entry.IsStat {
			count++
		}
	}
	return count
}

// ExpectedDeliveryDate is the collection reference date plus
// ceil(maxProcessingHours / 24) days.
func (d *OrderDraft) ExpectedDeliveryDate() time.Time {
	hours := d.MaxProcessingTimeHours()
	days := (hours + 23) / 24
	return d.CollectionDate.AddDate(0, 0, days)
}

var fastingKeywords = []string{"fasting", "glucose", "lipid", "cholesterol", "triglyceride"}

// DeriveRequiresFasting infers the fasting requirement from the test code or
// its preparation text. Only the initial selection uses it; a user override
// wins afterwards.
func DeriveRequiresFasting(test models.LabTest) bool {
	haystack := strings.ToLower(test.Code + " " + test.PreparationNotes)
	for _, keyword := range fastingKeywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}
