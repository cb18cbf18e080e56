package core

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultLRPrefix is used when the operator has not configured one.
const DefaultLRPrefix = "HR/"

// NextLRNo picks the next free receipt number: the largest numeric suffix
// among existing numbers plus one, zero-padded to five digits. Numbers with
// no digits at all are ignored.
func NextLRNo(prefix string, existing []string) string {
	if prefix == "" {
		prefix = DefaultLRPrefix
	}

	max := 0
	found := false
	for _, no := range existing {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, no)
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		found = true
		if n > max {
			max = n
		}
	}

	if !found {
		return prefix + "00001"
	}
	return fmt.Sprintf("%s%05d", prefix, max+1)
}
