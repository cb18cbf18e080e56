package core

import "sskcargo/models"

// Billing-party modes. Consignor and Consignee mirror the respective party;
// Other is an independently entered party that is never auto-synced.
const (
	BillingConsignor = "Consignor"
	BillingConsignee = "Consignee"
	BillingOther     = "Other"
)

// ValidBillingMode reports whether s is one of the three known modes.
func ValidBillingMode(s string) bool {
	return s == BillingConsignor || s == BillingConsignee || s == BillingOther
}

// InferBillingMode guesses the mode of a record that was saved without an
// explicit discriminator, by structural equality against the two parties.
// Consignor wins when both match; anything ambiguous falls back to Other.
func InferBillingMode(lr *models.LorryReceipt) string {
	switch {
	case lr.BillingTo.Equal(lr.Consignor):
		return BillingConsignor
	case lr.BillingTo.Equal(lr.Consignee):
		return BillingConsignee
	default:
		return BillingOther
	}
}

// ResolveBillingMode returns the record's stored mode, inferring one for
// records that predate the discriminator field.
func ResolveBillingMode(lr *models.LorryReceipt) string {
	if ValidBillingMode(lr.BillingMode) {
		return lr.BillingMode
	}
	return InferBillingMode(lr)
}

// ApplyBillingMode normalizes the stored mode and synchronizes BillingTo:
// in Consignor/Consignee mode the billing party is kept equal by value to the
// mirrored party, so edits to the source propagate on every recomputation.
// In Other mode BillingTo is left exactly as entered.
func ApplyBillingMode(lr *models.LorryReceipt) {
	mode := ResolveBillingMode(lr)
	lr.BillingMode = mode

	switch mode {
	case BillingConsignor:
		lr.BillingTo = lr.Consignor
	case BillingConsignee:
		lr.BillingTo = lr.Consignee
	}
}
