package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextLRNo(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		existing []string
		want     string
	}{
		{name: "no existing numbers", prefix: "HR/", existing: nil, want: "HR/00001"},
		{name: "sequential", prefix: "HR/", existing: []string{"HR/00001", "HR/00002"}, want: "HR/00003"},
		{name: "gaps do not reuse", prefix: "HR/", existing: []string{"HR/00001", "HR/00007"}, want: "HR/00008"},
		{name: "unordered input", prefix: "HR/", existing: []string{"HR/00042", "HR/00007", "HR/00013"}, want: "HR/00043"},
		{name: "non numeric entries ignored", prefix: "HR/", existing: []string{"DRAFT", "HR/00004"}, want: "HR/00005"},
		{name: "all non numeric", prefix: "HR/", existing: []string{"DRAFT", "TEMP"}, want: "HR/00001"},
		{name: "empty prefix uses default", prefix: "", existing: []string{"HR/00009"}, want: "HR/00010"},
		{name: "custom prefix", prefix: "SSK/", existing: []string{"SSK/00120"}, want: "SSK/00121"},
		{name: "growth past five digits", prefix: "HR/", existing: []string{"HR/99999"}, want: "HR/100000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextLRNo(tt.prefix, tt.existing))
		})
	}
}
