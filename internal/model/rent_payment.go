package model

// Payment methods offered by the recording form. Free-text methods are
// accepted as well; this list is not enforced.
const (
	MethodCash         = "Cash"
	MethodBankTransfer = "Bank Transfer"
	MethodUPI          = "UPI"
	MethodCheque       = "Cheque"
)

// RentPayment represents a single recorded rent payment. Payments are
// insert-only: they are never edited or deleted.
//
// MonthYear is the free-text label of the month the payment covers
// (e.g. "04-2024"); it is deliberately not parsed as a calendar value.
type RentPayment struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	TenantID     uint      `json:"tenant_id" gorm:"index;not null"`
	Tenant       *Tenant   `json:"-" gorm:"foreignKey:TenantID"`
	PropertyID   *uint     `json:"property_id" gorm:"index"`
	Property     *Property `json:"-" gorm:"foreignKey:PropertyID"`
	AmountPaise  int64     `json:"amount_paise" gorm:"not null"`
	PaymentDate  string    `json:"payment_date" gorm:"type:varchar(32);not null"`
	MonthYear    string    `json:"month_year" gorm:"type:varchar(32);not null"`
	Method       string    `json:"method" gorm:"type:varchar(64);not null"`
	LateFeePaise int64     `json:"late_fee_paise" gorm:"default:0"`
	Notes        string    `json:"notes" gorm:"type:text"`
	ReceiptPath  string    `json:"receipt_path" gorm:"type:varchar(512)"`
}
