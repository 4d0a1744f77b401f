package model

// Tenant represents a renter record. Tenants are never deleted; they are
// deactivated when they move out so payment and document history stays intact.
//
// Monetary fields are stored in paise (the smallest currency unit) to keep
// deposit arithmetic and display formatting exact.
type Tenant struct {
	ID              uint   `json:"id" gorm:"primarykey"`
	FullName        string `json:"full_name" gorm:"type:varchar(255);not null"`
	Phone           string `json:"phone" gorm:"type:varchar(32);not null"`
	Email           string `json:"email" gorm:"type:varchar(255)"`
	MoveInDate      string `json:"move_in_date" gorm:"type:varchar(32);not null"`
	MoveOutDate     string `json:"move_out_date" gorm:"type:varchar(32)"`
	RentPaise       int64  `json:"rent_paise" gorm:"not null"`
	DepositPaise    int64  `json:"deposit_paise" gorm:"not null"`
	DepositRefunded bool   `json:"deposit_refunded" gorm:"default:false"`
	Notes           string `json:"notes" gorm:"type:text"`
	IsActive        bool   `json:"is_active" gorm:"default:true"`
	PhotoPath       string `json:"photo_path" gorm:"type:varchar(512)"`
}
