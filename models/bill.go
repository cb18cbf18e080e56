package models

import "time"

// BillLine is one lorry receipt's row on a consolidated bill.
type BillLine struct {
	LRNo         string    `json:"lr_no"`
	Date         time.Time `json:"date"`
	TruckNo      string    `json:"truck_no"`
	FromPlace    string    `json:"from_place"`
	ToPlace      string    `json:"to_place"`
	Freight      float64   `json:"freight"`
	OtherCharges float64   `json:"other_charges"`
	Balance      float64   `json:"balance"`
}

// ConsolidatedBill is the invoice produced by folding a selection of lorry
// receipts into one billed total with GST split out.
type ConsolidatedBill struct {
	BillNo      string       `json:"bill_no"`
	Date        time.Time    `json:"date"`
	BilledParty PartyDetails `json:"billed_party"`
	Lines       []BillLine   `json:"lines"`

	TotalAmount float64 `json:"total_amount"`
	CGST        float64 `json:"cgst"`
	SGST        float64 `json:"sgst"`
	IGST        float64 `json:"igst"`
	NetAmount   float64 `json:"net_amount"`

	// AmountInWords holds the printed representation of NetAmount; filled in
	// by the rendering layer.
	AmountInWords string `json:"amount_in_words,omitempty"`
}
