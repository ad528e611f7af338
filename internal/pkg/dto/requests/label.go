package requests

// GenerateLabels carries purely presentational settings; they pass through to
// the stored label document untouched.
type GenerateLabels struct {
	LabelSize      string `json:"label_size" validate:"omitempty,oneof=small medium large"`
	Copies         int    `json:"copies" validate:"gte=1,lte=10"`
	IncludeQR      bool   `json:"include_qr"`
	IncludeBarcode bool   `json:"include_barcode"`
}
