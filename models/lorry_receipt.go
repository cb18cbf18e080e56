package models

import "time"

// LR document types.
const (
	LRTypeOriginal = "Original"
	LRTypeDummy    = "Dummy"
)

// LorryReceipt is the aggregate root of the system: one shipment document.
// Identity is the human-assigned receipt number, unique per owner. Weight and
// Freight are derived fields; the server recomputes and overwrites them on
// every save.
type LorryReceipt struct {
	ID      int64  `json:"id,omitempty" bson:"_id,omitempty" db:"id"`
	OwnerID int64  `json:"owner_id,omitempty" bson:"owner_id" db:"owner_id"`
	LRNo    string `json:"lr_no" bson:"lr_no" db:"lr_no"`
	LRType  string `json:"lr_type" bson:"lr_type" db:"lr_type"` // Original | Dummy

	TruckNo   string    `json:"truck_no" bson:"truck_no" db:"truck_no"`
	Date      time.Time `json:"date" bson:"date" db:"date"`
	FromPlace string    `json:"from_place" bson:"from_place" db:"from_place"`
	ToPlace   string    `json:"to_place" bson:"to_place" db:"to_place"`

	InvoiceNo     string     `json:"invoice_no" bson:"invoice_no" db:"invoice_no"`
	InvoiceAmount Amount     `json:"invoice_amount" bson:"invoice_amount" db:"invoice_amount"`
	InvoiceDate   *time.Time `json:"invoice_date,omitempty" bson:"invoice_date,omitempty" db:"invoice_date"`
	PONo          string     `json:"po_no" bson:"po_no" db:"po_no"`
	PODate        *time.Time `json:"po_date,omitempty" bson:"po_date,omitempty" db:"po_date"`

	EwayBillNo   string     `json:"eway_bill_no" bson:"eway_bill_no" db:"eway_bill_no"`
	EwayBillDate *time.Time `json:"eway_bill_date,omitempty" bson:"eway_bill_date,omitempty" db:"eway_bill_date"`
	EwayExDate   *time.Time `json:"eway_ex_date,omitempty" bson:"eway_ex_date,omitempty" db:"eway_ex_date"`

	AddressOfDelivery string `json:"address_of_delivery" bson:"address_of_delivery" db:"address_of_delivery"`
	GSTPaidBy         string `json:"gst_paid_by" bson:"gst_paid_by" db:"gst_paid_by"`

	Consignor PartyDetails `json:"consignor" bson:"consignor" db:"consignor"`
	Consignee PartyDetails `json:"consignee" bson:"consignee" db:"consignee"`
	BillingTo PartyDetails `json:"billing_to" bson:"billing_to" db:"billing_to"`
	// BillingMode records which party pays: Consignor, Consignee or Other.
	// Records saved before the field existed carry "" and are inferred by
	// comparing BillingTo against the two parties.
	BillingMode string `json:"billing_mode" bson:"billing_mode" db:"billing_mode"`

	Items []Item `json:"items" bson:"items" db:"items"`

	Weight         Amount `json:"weight" bson:"weight" db:"weight"` // derived: sum of item weights
	ChargedWeight  Amount `json:"charged_weight" bson:"charged_weight" db:"charged_weight"`
	ActualWeightMT Amount `json:"actual_weight_mt" bson:"actual_weight_mt" db:"actual_weight_mt"`

	Freight Amount          `json:"freight" bson:"freight" db:"freight"` // derived: actual weight x rate
	Charges DetailedCharges `json:"charges" bson:"charges" db:"charges"`
	Rate    Amount          `json:"rate" bson:"rate" db:"rate"`
	RateOn  string          `json:"rate_on" bson:"rate_on" db:"rate_on"` // fixed to "Ton"

	Remark string `json:"remark" bson:"remark" db:"remark"`

	Status          string     `json:"status" bson:"status" db:"status"`
	StatusUpdatedAt *time.Time `json:"status_updated_at,omitempty" bson:"status_updated_at,omitempty" db:"status_updated_at"`

	// PODURL points at the uploaded proof-of-delivery file, nil until the
	// operator attaches one.
	PODURL *string `json:"pod_url,omitempty" bson:"pod_url,omitempty" db:"pod_url"`

	CreatedBy string     `json:"created_by,omitempty" bson:"created_by" db:"created_by"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
}
