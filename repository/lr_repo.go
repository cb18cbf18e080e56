package repository

import (
	"time"

	"sskcargo/models"
)

// LRRepository persists lorry receipts. Every operation is scoped to an
// owner; a receipt's identity within that scope is its LR number.
type LRRepository interface {
	// Save upserts by (owner, lr_no). The receipt's derived fields are
	// expected to be recomputed by the caller before saving.
	Save(lr *models.LorryReceipt) error
	// List returns the owner's receipts, newest date first.
	List(ownerID int64) ([]*models.LorryReceipt, error)
	// GetByNo returns one receipt, or nil when it does not exist.
	GetByNo(ownerID int64, lrNo string) (*models.LorryReceipt, error)
	// ListNos returns the owner's receipt numbers (for numbering).
	ListNos(ownerID int64) ([]string, error)
	// Delete removes a receipt and reports the POD URL that was attached,
	// so the caller can cascade the file deletion.
	Delete(ownerID int64, lrNo string) (podURL string, err error)
	// UpdateStatus stamps a new delivery status.
	UpdateStatus(ownerID int64, lrNo, status string, at time.Time) error
	// UpdatePOD sets or clears the proof-of-delivery attachment URL.
	UpdatePOD(ownerID int64, lrNo string, url *string) error
}
