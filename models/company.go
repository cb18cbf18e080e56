package models

import "time"

type BankDetails struct {
	Name      string `json:"name" bson:"name" db:"name"`
	Branch    string `json:"branch" bson:"branch" db:"branch"`
	AccountNo string `json:"account_no" bson:"account_no" db:"account_no"`
	IFSCCode  string `json:"ifsc_code" bson:"ifsc_code" db:"ifsc_code"`
}

// CompanyDetails is the per-owner letterhead configuration printed on every
// document. One row per owner, created lazily with defaults on first read and
// overwritten wholesale on save.
type CompanyDetails struct {
	ID                int64       `json:"id,omitempty" bson:"_id,omitempty" db:"id"`
	OwnerID           int64       `json:"owner_id,omitempty" bson:"owner_id" db:"owner_id"`
	Name              string      `json:"name" bson:"name" db:"name"`
	Tagline           string      `json:"tagline" bson:"tagline" db:"tagline"`
	LogoURL           string      `json:"logo_url" bson:"logo_url" db:"logo_url"`
	SignatureImageURL string      `json:"signature_image_url" bson:"signature_image_url" db:"signature_image_url"`
	Address           string      `json:"address" bson:"address" db:"address"`
	Email             string      `json:"email" bson:"email" db:"email"`
	Web               string      `json:"web" bson:"web" db:"web"`
	Contact           []string    `json:"contact" bson:"contact" db:"contact"`
	PAN               string      `json:"pan" bson:"pan" db:"pan"`
	GSTN              string      `json:"gstn" bson:"gstn" db:"gstn"`
	BankDetails       BankDetails `json:"bank_details" bson:"bank_details" db:"bank_details"`
	CreatedAt         time.Time   `json:"created_at" bson:"created_at" db:"created_at"`
}

// DefaultCompanyDetails is what a fresh owner sees before saving their own
// letterhead.
func DefaultCompanyDetails(ownerID int64) *CompanyDetails {
	return &CompanyDetails{
		OwnerID: ownerID,
		Name:    "SSK CARGO SERVICES PVT LTD",
		Tagline: "(Fleet Owner & Contractor)",
		Contact: []string{},
	}
}
