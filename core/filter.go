package core

import (
	"strings"
	"time"

	"sskcargo/models"
)

// Filter narrows a lorry receipt list by free text and date range. A zero
// filter matches everything.
type Filter struct {
	// Text matches case-insensitively against truck number, consignor name,
	// consignee name and status label.
	Text string
	// DateFrom is normalized to the start of its day, DateTo to the end of
	// its day, so a single-day range of [d, d] includes records dated d.
	DateFrom *time.Time
	DateTo   *time.Time
}

func (f Filter) IsZero() bool {
	return f.Text == "" && f.DateFrom == nil && f.DateTo == nil
}

// Match reports whether a single receipt passes every active criterion.
func (f Filter) Match(lr *models.LorryReceipt) bool {
	if f.Text != "" {
		q := strings.ToLower(f.Text)
		if !strings.Contains(strings.ToLower(lr.TruckNo), q) &&
			!strings.Contains(strings.ToLower(lr.Consignor.Name), q) &&
			!strings.Contains(strings.ToLower(lr.Consignee.Name), q) &&
			!strings.Contains(strings.ToLower(lr.Status), q) {
			return false
		}
	}
	if f.DateFrom != nil && lr.Date.Before(startOfDay(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && lr.Date.After(endOfDay(*f.DateTo)) {
		return false
	}
	return true
}

// Apply returns the matching subsequence in input order. The input slice is
// never mutated; a zero filter returns it unchanged.
func (f Filter) Apply(list []*models.LorryReceipt) []*models.LorryReceipt {
	if f.IsZero() {
		return list
	}
	out := make([]*models.LorryReceipt, 0, len(list))
	for _, lr := range list {
		if f.Match(lr) {
			out = append(out, lr)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
