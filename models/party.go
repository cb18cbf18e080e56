package models

// PartyDetails is a consignor, consignee or billing party as printed on the
// lorry receipt. All fields are plain text; empty strings are valid.
type PartyDetails struct {
	Name    string `json:"name" bson:"name" db:"name"`
	Address string `json:"address" bson:"address" db:"address"`
	City    string `json:"city" bson:"city" db:"city"`
	Contact string `json:"contact" bson:"contact" db:"contact"`
	PAN     string `json:"pan" bson:"pan" db:"pan"`
	GST     string `json:"gst" bson:"gst" db:"gst"`
}

// Equal reports field-for-field equality.
func (p PartyDetails) Equal(o PartyDetails) bool {
	return p == o
}

func (p PartyDetails) IsEmpty() bool {
	return p == PartyDetails{}
}
