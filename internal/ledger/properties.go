package ledger

import (
	"tenant-ledger/internal/model"
)

// PropertyInput carries the fields of the add-property form.
type PropertyInput struct {
	Address    string
	UnitNumber string
	OwnerNotes string
}

// AddProperty creates a property lookup row.
func (l *Ledger) AddProperty(in PropertyInput) (*model.Property, error) {
	if blank(in.Address) {
		return nil, &ValidationError{Field: "address", Reason: "must not be empty"}
	}

	property := model.Property{
		Address:    in.Address,
		UnitNumber: in.UnitNumber,
		OwnerNotes: in.OwnerNotes,
	}
	if err := l.db.Create(&property).Error; err != nil {
		return nil, &StorageError{Op: "create property", Err: err}
	}
	return &property, nil
}

// ListProperties returns all properties ordered by address.
func (l *Ledger) ListProperties() ([]model.Property, error) {
	var properties []model.Property
	if err := l.db.Order("address ASC").Find(&properties).Error; err != nil {
		return nil, &StorageError{Op: "list properties", Err: err}
	}
	return properties, nil
}
