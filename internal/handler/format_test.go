package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		paise int64
		want  string
	}{
		{0, "₹0.00"},
		{5, "₹0.05"},
		{100, "₹1.00"},
		{15000, "₹150.00"},
		{1500000, "₹15,000.00"},
		{3000000, "₹30,000.00"},
		{123456789, "₹1,234,567.89"},
		{100000000000, "₹1,000,000,000.00"},
		{-250050, "-₹2,500.50"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatINR(tc.paise))
	}
}
