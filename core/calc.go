// Package core holds the derived-field, billing, filtering and invoice
// computations for lorry receipts. Everything here is a pure function over
// in-memory records: no I/O, no mutation of inputs unless documented, and no
// errors — bad numeric input degrades to 0 so a half-filled form still
// computes.
package core

import "sskcargo/models"

// Totals are the derived figures of a single lorry receipt.
type Totals struct {
	Weight       float64 `json:"weight"`
	Freight      float64 `json:"freight"`
	TotalCharges float64 `json:"total_charges"`
	GrandTotal   float64 `json:"grand_total"`
}

// TotalWeight sums the item weights.
func TotalWeight(items []models.Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Weight.Float64()
	}
	return sum
}

// FreightFor is actual weight (MT) times rate.
func FreightFor(actualWeightMT, rate models.Amount) float64 {
	return actualWeightMT.Float64() * rate.Float64()
}

// TotalCharges sums the seven surcharge fields.
func TotalCharges(c models.DetailedCharges) float64 {
	return c.Hamali.Float64() +
		c.SurCharge.Float64() +
		c.STCharge.Float64() +
		c.CollectionCharge.Float64() +
		c.DDCharge.Float64() +
		c.OtherCharge.Float64() +
		c.RiskCharge.Float64()
}

// Compute derives all totals for a receipt without touching it.
func Compute(lr *models.LorryReceipt) Totals {
	t := Totals{
		Weight:       TotalWeight(lr.Items),
		Freight:      FreightFor(lr.ActualWeightMT, lr.Rate),
		TotalCharges: TotalCharges(lr.Charges),
	}
	t.GrandTotal = t.Freight + t.TotalCharges
	return t
}

// Recalculate overwrites the stored derived fields. Weight and Freight are
// not operator-settable; whatever the client sent is discarded here.
func Recalculate(lr *models.LorryReceipt) Totals {
	t := Compute(lr)
	lr.Weight = models.Amount(t.Weight)
	lr.Freight = models.Amount(t.Freight)
	return t
}
