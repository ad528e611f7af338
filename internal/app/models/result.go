package models

import (
	"time"
)

type ResultFlag string

const (
	ResultFlagNormal   ResultFlag = "normal"
	ResultFlagLow      ResultFlag = "low"
	ResultFlagHigh     ResultFlag = "high"
	ResultFlagCritical ResultFlag = "critical"
)

// LabResult is the completed-result record handed to the notification
// collaborator. Channel and template selection happen downstream.
type LabResult struct {
	OrderID    string        `json:"order_id"`
	TestID     string        `json:"test_id"`
	PatientID  string        `json:"patient_id"`
	Value      string        `json:"value"`
	Unit       string        `json:"unit,omitempty"`
	Flag       ResultFlag    `json:"flag"`
	Priority   OrderPriority `json:"priority"`
	ReportedAt time.Time     `json:"reported_at"`
}

type DeliveryStatus string

const (
	DeliverySending   DeliveryStatus = "sending"
	DeliverySent      DeliveryStatus = "sent"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryRead      DeliveryStatus = "read"
)

// Sample correlates a physical specimen with its (order, test) pair. The
// identifier is generated once at label time and persisted so reprints keep
// the same code.
type Sample struct {
	SampleID     string       `json:"sample_id" bson:"_id"`
	OrderID      string       `json:"order_id" bson:"order_id"`
	TestID       string       `json:"test_id" bson:"test_id"`
	SpecimenType SpecimenType `json:"specimen_type" bson:"specimen_type"`
	GeneratedAt  time.Time    `json:"generated_at" bson:"generated_at"`
	LabelObject  string       `json:"label_object,omitempty" bson:"label_object,omitempty"`
}
