package ledger

import (
	"errors"

	"tenant-ledger/internal/model"

	"gorm.io/gorm"
)

// PaymentInput carries the fields of the record-payment form.
type PaymentInput struct {
	TenantID     uint
	PropertyID   *uint
	AmountPaise  int64
	PaymentDate  string
	MonthYear    string
	Method       string
	LateFeePaise int64
	Notes        string
	ReceiptPath  string
}

// PaymentRow is a payment joined with the owning tenant's display name,
// as shown on the rent screen.
type PaymentRow struct {
	model.RentPayment
	TenantName string `json:"tenant_name"`
}

func (in *PaymentInput) validate() error {
	if in.TenantID == 0 {
		return &ValidationError{Field: "tenant_id", Reason: "must be set"}
	}
	if in.AmountPaise <= 0 {
		return &ValidationError{Field: "amount_paise", Reason: "must be positive"}
	}
	if blank(in.PaymentDate) {
		return &ValidationError{Field: "payment_date", Reason: "must not be empty"}
	}
	if blank(in.MonthYear) {
		return &ValidationError{Field: "month_year", Reason: "must not be empty"}
	}
	if blank(in.Method) {
		return &ValidationError{Field: "method", Reason: "must not be empty"}
	}
	if in.LateFeePaise < 0 {
		return &ValidationError{Field: "late_fee_paise", Reason: "must not be negative"}
	}
	return nil
}

// AddRentPayment validates the input, checks that the referenced tenant (and
// property, when given) exists, and records the payment. Nothing is written
// on failure.
func (l *Ledger) AddRentPayment(in PaymentInput) (*model.RentPayment, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if err := l.checkTenantRef(in.TenantID); err != nil {
		return nil, err
	}
	if in.PropertyID != nil {
		if err := l.checkPropertyRef(*in.PropertyID); err != nil {
			return nil, err
		}
	}

	payment := model.RentPayment{
		TenantID:     in.TenantID,
		PropertyID:   in.PropertyID,
		AmountPaise:  in.AmountPaise,
		PaymentDate:  in.PaymentDate,
		MonthYear:    in.MonthYear,
		Method:       in.Method,
		LateFeePaise: in.LateFeePaise,
		Notes:        in.Notes,
		ReceiptPath:  in.ReceiptPath,
	}

	if err := l.db.Create(&payment).Error; err != nil {
		return nil, &StorageError{Op: "create payment", Err: err}
	}
	return &payment, nil
}

// ListRentPayments returns all payments with the tenant's name, most recent
// payment date first.
func (l *Ledger) ListRentPayments() ([]PaymentRow, error) {
	var rows []PaymentRow
	err := l.db.Model(&model.RentPayment{}).
		Select("rent_payments.*, tenants.full_name AS tenant_name").
		Joins("JOIN tenants ON tenants.id = rent_payments.tenant_id").
		Order("rent_payments.payment_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, &StorageError{Op: "list payments", Err: err}
	}
	return rows, nil
}

func (l *Ledger) checkTenantRef(id uint) error {
	err := l.db.First(&model.Tenant{}, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ReferenceError{Entity: "tenant", ID: id}
	}
	if err != nil {
		return &StorageError{Op: "check tenant reference", Err: err}
	}
	return nil
}

func (l *Ledger) checkPropertyRef(id uint) error {
	err := l.db.First(&model.Property{}, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ReferenceError{Entity: "property", ID: id}
	}
	if err != nil {
		return &StorageError{Op: "check property reference", Err: err}
	}
	return nil
}
