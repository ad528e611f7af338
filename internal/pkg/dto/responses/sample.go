package responses

import (
	"labdesk-service/internal/app/models"
)

type SampleLabel struct {
	SampleID       string              `json:"sample_id"`
	OrderID        string              `json:"order_id"`
	TestID         string              `json:"test_id"`
	TestName       string              `json:"test_name"`
	SpecimenType   models.SpecimenType `json:"specimen_type"`
	LabelSize      string              `json:"label_size"`
	Copies         int                 `json:"copies"`
	IncludeQR      bool                `json:"include_qr"`
	IncludeBarcode bool                `json:"include_barcode"`
	ObjectName     string              `json:"object_name,omitempty"`
	GeneratedAt    string              `json:"generated_at"`
}

type SampleRecord struct {
	SampleID     string              `json:"sample_id"`
	OrderID      string              `json:"order_id"`
	TestID       string              `json:"test_id"`
	SpecimenType models.SpecimenType `json:"specimen_type"`
	ObjectName   string              `json:"object_name,omitempty"`
	GeneratedAt  string              `json:"generated_at"`
}

type QueuedNotification struct {
	NotificationID string `json:"notification_id"`
	Status         string `json:"status"`
}
