package models

type SpecimenType string

const (
	SpecimenBlood  SpecimenType = "blood"
	SpecimenUrine  SpecimenType = "urine"
	SpecimenStool  SpecimenType = "stool"
	SpecimenSputum SpecimenType = "sputum"
	SpecimenTissue SpecimenType = "tissue"
	SpecimenOther  SpecimenType = "other"
)

// LabTest is a catalog entry. Supplied read-only by the catalog repository.
type LabTest struct {
	ID                  string       `json:"id" bson:"_id"`
	Code                string       `json:"code" bson:"code"`
	Name                string       `json:"name" bson:"name"`
	Category            string       `json:"category" bson:"category"`
	SpecimenType        SpecimenType `json:"specimen_type" bson:"specimen_type"`
	ProcessingTimeHours int          `json:"processing_time_hours" bson:"processing_time_hours"`
	Price               float64      `json:"price" bson:"price"`
	PreparationNotes    string       `json:"preparation_notes,omitempty" bson:"preparation_notes,omitempty"`
}
