package ledger

import (
	"errors"

	"tenant-ledger/internal/model"

	"gorm.io/gorm"
)

// Security deposit is fixed at two months of rent when a tenant moves in.
const depositMonths = 2

// TenantInput carries the fields of the add-tenant form. PhotoPath, when set,
// must already point into the attachment store.
type TenantInput struct {
	FullName   string
	Phone      string
	Email      string
	MoveInDate string
	RentPaise  int64
	Notes      string
	PhotoPath  string
}

// TenantUpdate carries the editable fields of an existing tenant. The deposit
// is fixed at move-in and is not recomputed when the rent changes.
type TenantUpdate struct {
	FullName        string
	Phone           string
	Email           string
	MoveInDate      string
	MoveOutDate     string
	RentPaise       int64
	Notes           string
	PhotoPath       string
	DepositRefunded bool
}

// TenantFilter narrows ListTenants. The zero value returns everything.
type TenantFilter struct {
	ActiveOnly bool
}

func (in *TenantInput) validate() error {
	if blank(in.FullName) {
		return &ValidationError{Field: "full_name", Reason: "must not be empty"}
	}
	if !validPhone(in.Phone) {
		return &ValidationError{Field: "phone", Reason: "must be at least 10 digits"}
	}
	if in.RentPaise <= 0 {
		return &ValidationError{Field: "rent_paise", Reason: "must be positive"}
	}
	if blank(in.MoveInDate) {
		return &ValidationError{Field: "move_in_date", Reason: "must not be empty"}
	}
	return nil
}

// AddTenant validates the input and creates an active tenant. The security
// deposit is computed here, never taken from the caller.
func (l *Ledger) AddTenant(in TenantInput) (*model.Tenant, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	tenant := model.Tenant{
		FullName:     in.FullName,
		Phone:        in.Phone,
		Email:        in.Email,
		MoveInDate:   in.MoveInDate,
		RentPaise:    in.RentPaise,
		DepositPaise: in.RentPaise * depositMonths,
		Notes:        in.Notes,
		PhotoPath:    in.PhotoPath,
		IsActive:     true,
	}

	if err := l.db.Create(&tenant).Error; err != nil {
		return nil, &StorageError{Op: "create tenant", Err: err}
	}
	return &tenant, nil
}

// ListTenants returns tenants ordered active-first, then alphabetically by
// name within each group. This ordering is what the tenant screen shows and
// must not change.
func (l *Ledger) ListTenants(filter TenantFilter) ([]model.Tenant, error) {
	query := l.db.Model(&model.Tenant{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var tenants []model.Tenant
	if err := query.Order("is_active DESC, full_name ASC").Find(&tenants).Error; err != nil {
		return nil, &StorageError{Op: "list tenants", Err: err}
	}
	return tenants, nil
}

// GetTenant returns the full tenant record for id.
func (l *Ledger) GetTenant(id uint) (*model.Tenant, error) {
	var tenant model.Tenant
	err := l.db.First(&tenant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "tenant", ID: id}
	}
	if err != nil {
		return nil, &StorageError{Op: "get tenant", Err: err}
	}
	return &tenant, nil
}

// UpdateTenant rewrites the editable fields of an existing tenant.
func (l *Ledger) UpdateTenant(id uint, up TenantUpdate) (*model.Tenant, error) {
	in := TenantInput{
		FullName:   up.FullName,
		Phone:      up.Phone,
		MoveInDate: up.MoveInDate,
		RentPaise:  up.RentPaise,
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	tenant, err := l.GetTenant(id)
	if err != nil {
		return nil, err
	}

	tenant.FullName = up.FullName
	tenant.Phone = up.Phone
	tenant.Email = up.Email
	tenant.MoveInDate = up.MoveInDate
	tenant.MoveOutDate = up.MoveOutDate
	tenant.RentPaise = up.RentPaise
	tenant.Notes = up.Notes
	tenant.DepositRefunded = up.DepositRefunded
	if up.PhotoPath != "" {
		tenant.PhotoPath = up.PhotoPath
	}

	if err := l.db.Save(tenant).Error; err != nil {
		return nil, &StorageError{Op: "update tenant", Err: err}
	}
	return tenant, nil
}

// SetTenantActive toggles the active flag. Deactivation keeps all payment and
// document history; there is no delete.
func (l *Ledger) SetTenantActive(id uint, active bool) error {
	if _, err := l.GetTenant(id); err != nil {
		return err
	}

	err := l.db.Model(&model.Tenant{}).Where("id = ?", id).
		Update("is_active", active).Error
	if err != nil {
		return &StorageError{Op: "set tenant status", Err: err}
	}
	return nil
}
