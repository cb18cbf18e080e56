package core

import (
	"fmt"
	"time"

	"sskcargo/models"
)

// Delivery statuses. Any known status may be set at any time: the business
// imposes no transition order, so there is no transition table here.
const (
	StatusBooked         = "Booked"
	StatusInTransit      = "In Transit"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
)

var statuses = []string{
	StatusBooked,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// Statuses returns the known status labels in display order.
func Statuses() []string {
	out := make([]string, len(statuses))
	copy(out, statuses)
	return out
}

func ValidStatus(s string) bool {
	for _, known := range statuses {
		if s == known {
			return true
		}
	}
	return false
}

// SetStatus stamps a new status onto the receipt. Only unknown labels are
// rejected.
func SetStatus(lr *models.LorryReceipt, status string, at time.Time) error {
	if !ValidStatus(status) {
		return fmt.Errorf("unknown status %q", status)
	}
	lr.Status = status
	lr.StatusUpdatedAt = &at
	return nil
}
