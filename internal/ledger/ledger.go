// Package ledger is the storage engine of the tenant ledger: it owns the four
// tables and every read/write against them. All operations validate their
// input themselves, independent of whatever the caller already checked.
package ledger

import (
	"strings"

	"gorm.io/gorm"
)

// Ledger provides validated persistence for tenants, properties, rent
// payments and documents.
type Ledger struct {
	db *gorm.DB
}

// New initializes a ledger over an already-opened database
func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// validPhone reports whether phone is all digits and at least 10 characters.
func validPhone(phone string) bool {
	if len(phone) < 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
