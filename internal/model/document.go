package model

// Document types offered by the attach form. Free-text types are accepted.
const (
	DocLeaseAgreement = "Lease Agreement"
	DocPANCard        = "PAN Card"
	DocAadhaar        = "Aadhaar"
	DocPassport       = "Passport"
	DocDrivingLicense = "Driving License"
	DocOther          = "Other"
)

// Document represents a stored tenant document. FilePath points into the
// attachment store; the row does not own the file on disk. ExpiryDate is an
// opaque date string, empty when the document does not expire.
type Document struct {
	ID         uint    `json:"id" gorm:"primarykey"`
	TenantID   uint    `json:"tenant_id" gorm:"index;not null"`
	Tenant     *Tenant `json:"-" gorm:"foreignKey:TenantID"`
	DocType    string  `json:"doc_type" gorm:"type:varchar(128);not null"`
	FilePath   string  `json:"file_path" gorm:"type:varchar(512);not null"`
	ExpiryDate *string `json:"expiry_date" gorm:"type:varchar(32)"`
}
