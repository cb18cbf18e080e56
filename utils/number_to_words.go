package utils

import (
	"math"
	"strings"
)

var unitWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tenWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// Indian numbering: after the hundreds, groups of two digits.
var scales = []struct {
	value int
	name  string
}{
	{10000000, "Crore"},
	{100000, "Lakh"},
	{1000, "Thousand"},
	{100, "Hundred"},
}

// numberWords spells a non-negative integer in the Indian numbering system.
// Zero comes back empty; the caller decides how to phrase nothing.
func numberWords(n int) string {
	if n <= 0 {
		return ""
	}

	var parts []string
	for _, s := range scales {
		if n >= s.value {
			parts = append(parts, numberWords(n/s.value), s.name)
			n %= s.value
		}
	}
	if n >= 20 {
		parts = append(parts, tenWords[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, unitWords[n])
	}
	return strings.Join(parts, " ")
}

// AmountInWords spells a rupee amount for printing on documents, e.g.
// 3360 -> "Three Thousand Three Hundred Sixty Rupees Only".
func AmountInWords(amount float64) string {
	rupees := int(math.Floor(amount))
	paise := int(math.Round((amount - float64(rupees)) * 100))

	var parts []string
	if rupees > 0 {
		parts = append(parts, numberWords(rupees)+" Rupees")
	}
	if paise > 0 {
		parts = append(parts, numberWords(paise)+" Paise")
	}
	if len(parts) == 0 {
		return "Zero Rupees Only"
	}
	return strings.Join(parts, " and ") + " Only"
}
