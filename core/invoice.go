package core

import (
	"fmt"
	"time"

	"sskcargo/models"
)

// TaxPolicy carries the GST split applied to a consolidated bill. Rates are
// fractions (0.025 = 2.5%).
type TaxPolicy struct {
	CGSTRate float64
	SGSTRate float64
	IGSTRate float64
}

// DefaultTaxPolicy is the observed split: 2.5% CGST, 2.5% SGST, no IGST.
func DefaultTaxPolicy() TaxPolicy {
	return TaxPolicy{CGSTRate: 0.025, SGSTRate: 0.025, IGSTRate: 0}
}

// Aggregate folds a selection of lorry receipts into one consolidated bill.
// Every numeric field degrades to 0 on missing data; an empty selection
// yields a zeroed bill addressed to a placeholder party.
func Aggregate(selection []*models.LorryReceipt, policy TaxPolicy, at time.Time) models.ConsolidatedBill {
	bill := models.ConsolidatedBill{
		BillNo:      billNo(selection),
		Date:        at,
		BilledParty: billedParty(selection),
		Lines:       make([]models.BillLine, 0, len(selection)),
	}

	for _, lr := range selection {
		freight := lr.Freight.Float64()
		other := TotalCharges(lr.Charges)
		bill.Lines = append(bill.Lines, models.BillLine{
			LRNo:         lr.LRNo,
			Date:         lr.Date,
			TruckNo:      lr.TruckNo,
			FromPlace:    lr.FromPlace,
			ToPlace:      lr.ToPlace,
			Freight:      freight,
			OtherCharges: other,
			Balance:      freight + other,
		})
		bill.TotalAmount += freight + other
	}

	bill.CGST = bill.TotalAmount * policy.CGSTRate
	bill.SGST = bill.TotalAmount * policy.SGSTRate
	bill.IGST = bill.TotalAmount * policy.IGSTRate
	bill.NetAmount = bill.TotalAmount + bill.CGST + bill.SGST + bill.IGST

	return bill
}

// billedParty is the first record's billing party when one is named, else its
// consignor. An empty selection gets the "N/A" placeholder.
func billedParty(selection []*models.LorryReceipt) models.PartyDetails {
	if len(selection) == 0 {
		return models.PartyDetails{Name: "N/A", Address: "N/A", GST: "N/A"}
	}
	first := selection[0]
	if first.BillingTo.Name != "" {
		return first.BillingTo
	}
	return first.Consignor
}

// billNo derives a stable 4-digit bill number from the selected receipt
// numbers, matching the printed format.
func billNo(selection []*models.LorryReceipt) string {
	joined := 0
	for _, lr := range selection {
		joined += len(lr.LRNo)
	}
	return fmt.Sprintf("%04d", joined%90+1)
}
