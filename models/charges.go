package models

// DetailedCharges are the fixed set of surcharges billed on top of freight.
// Every field defaults to 0.
type DetailedCharges struct {
	Hamali           Amount `json:"hamali" bson:"hamali" db:"hamali"`
	SurCharge        Amount `json:"sur_charge" bson:"sur_charge" db:"sur_charge"`
	STCharge         Amount `json:"st_charge" bson:"st_charge" db:"st_charge"`
	CollectionCharge Amount `json:"collection_charge" bson:"collection_charge" db:"collection_charge"`
	DDCharge         Amount `json:"dd_charge" bson:"dd_charge" db:"dd_charge"`
	OtherCharge      Amount `json:"other_charge" bson:"other_charge" db:"other_charge"`
	RiskCharge       Amount `json:"risk_charge" bson:"risk_charge" db:"risk_charge"`
}
