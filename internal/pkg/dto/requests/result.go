package requests

type ResultNotification struct {
	OrderID   string `json:"order_id" validate:"required"`
	TestID    string `json:"test_id" validate:"required"`
	PatientID string `json:"patient_id" validate:"required"`
	Value     string `json:"value" validate:"required"`
	Unit      string `json:"unit"`
	Flag      string `json:"flag" validate:"required,oneof=normal low high critical"`
	Priority  string `json:"priority" validate:"required,priority"`
}
