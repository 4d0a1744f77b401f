package handler

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatINR renders a paise amount as a display string with the currency
// symbol, thousands grouping and two decimal places (15000000 -> "₹150,000.00").
// Display formatting lives here in the façade; the ledger stores paise only.
func FormatINR(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}

	rupees := strconv.FormatInt(paise/100, 10)

	var grouped strings.Builder
	lead := len(rupees) % 3
	if lead > 0 {
		grouped.WriteString(rupees[:lead])
	}
	for i := lead; i < len(rupees); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteString(rupees[i : i+3])
	}

	return fmt.Sprintf("%s₹%s.%02d", sign, grouped.String(), paise%100)
}
