package models

import (
	"time"
)

type OrderPriority string

const (
	PriorityRoutine OrderPriority = "routine"
	PriorityUrgent  OrderPriority = "urgent"
	PriorityStat    OrderPriority = "stat"
)

type PatientRef struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	InsuranceID string `json:"insurance_id,omitempty" bson:"insurance_id,omitempty"`
}

type ClinicianRef struct {
	ID         string `json:"id" bson:"id"`
	Name       string `json:"name" bson:"name"`
	Department string `json:"department,omitempty" bson:"department,omitempty"`
}

// SelectedTestEntry is one chosen catalog test inside a draft. At most one
// entry exists per distinct test ID.
type SelectedTestEntry struct {
	Test            LabTest `json:"test" bson:"test"`
	IsUrgent        bool    `json:"is_urgent" bson:"is_urgent"`
	IsStat          bool    `json:"is_stat" bson:"is_stat"`
	RequiresFasting bool    `json:"requires_fasting" bson:"requires_fasting"`
	// FastingSetByUser marks a manual override; once set the flag is never
	// recomputed from the catalog entry.
	FastingSetByUser bool   `json:"fasting_set_by_user" bson:"fasting_set_by_user"`
	Notes            string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// OrderRequest is the immutable snapshot emitted on successful submission.
// It carries everything the persistence collaborator needs; the draft it came
// from is discarded right after.
type OrderRequest struct {
	Patient                PatientRef          `json:"patient"`
	Clinician              ClinicianRef        `json:"clinician"`
	Tests                  []SelectedTestEntry `json:"tests"`
	Priority               OrderPriority       `json:"priority"`
	CollectionDate         time.Time           `json:"collection_date"`
	ClinicalNotes          string              `json:"clinical_notes,omitempty"`
	UrgentJustification    string              `json:"urgent_justification,omitempty"`
	TotalCost              float64             `json:"total_cost"`
	MaxProcessingTimeHours int                 `json:"max_processing_time_hours"`
	UrgentTestCount        int                 `json:"urgent_test_count"`
	ExpectedDeliveryDate   time.Time           `json:"expected_delivery_date"`
	SubmittedAt            time.Time           `json:"submitted_at"`
}

// Order is the persisted form of a submitted OrderRequest.
type Order struct {
	ID                     string              `json:"id" bson:"_id"`
	Patient                PatientRef          `json:"patient" bson:"patient"`
	Clinician              ClinicianRef        `json:"clinician" bson:"clinician"`
	Tests                  []SelectedTestEntry `json:"tests" bson:"tests"`
	Priority               OrderPriority       `json:"priority" bson:"priority"`
	CollectionDate         time.Time           `json:"collection_date" bson:"collection_date"`
	ClinicalNotes          string              `json:"clinical_notes,omitempty" bson:"clinical_notes,omitempty"`
	UrgentJustification    string              `json:"urgent_justification,omitempty" bson:"urgent_justification,omitempty"`
	TotalCost              float64             `json:"total_cost" bson:"total_cost"`
	MaxProcessingTimeHours int                 `json:"max_processing_time_hours" bson:"max_processing_time_hours"`
	UrgentTestCount        int                 `json:"urgent_test_count" bson:"urgent_test_count"`
	ExpectedDeliveryDate   time.Time           `json:"expected_delivery_date" bson:"expected_delivery_date"`
	CreatedAt              time.Time           `json:"created_at" bson:"created_at"`
}
