package model

// Property represents a rental property or unit. It is a lookup entity:
// payments may point at it, but nothing in the ledger depends on one existing.
type Property struct {
	ID         uint   `json:"id" gorm:"primarykey"`
	Address    string `json:"address" gorm:"type:varchar(512);not null"`
	UnitNumber string `json:"unit_number" gorm:"type:varchar(64)"`
	OwnerNotes string `json:"owner_notes" gorm:"type:text"`
}
