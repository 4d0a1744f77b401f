package ledger

import (
	"tenant-ledger/internal/model"
)

// DocumentInput carries the fields of the add-document form. FilePath must
// already point into the attachment store.
type DocumentInput struct {
	TenantID   uint
	DocType    string
	FilePath   string
	ExpiryDate string
}

// DocumentRow is a document joined with the owning tenant's display name.
type DocumentRow struct {
	model.Document
	TenantName string `json:"tenant_name"`
}

func (in *DocumentInput) validate() error {
	if in.TenantID == 0 {
		return &ValidationError{Field: "tenant_id", Reason: "must be set"}
	}
	if blank(in.DocType) {
		return &ValidationError{Field: "doc_type", Reason: "must not be empty"}
	}
	if blank(in.FilePath) {
		return &ValidationError{Field: "file_path", Reason: "must not be empty"}
	}
	return nil
}

// AddDocument validates the input, checks the tenant reference and records
// the document.
func (l *Ledger) AddDocument(in DocumentInput) (*model.Document, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := l.checkTenantRef(in.TenantID); err != nil {
		return nil, err
	}

	doc := model.Document{
		TenantID: in.TenantID,
		DocType:  in.DocType,
		FilePath: in.FilePath,
	}
	if in.ExpiryDate != "" {
		doc.ExpiryDate = &in.ExpiryDate
	}

	if err := l.db.Create(&doc).Error; err != nil {
		return nil, &StorageError{Op: "create document", Err: err}
	}
	return &doc, nil
}

// ListDocuments returns all documents with the tenant's name, ordered by
// expiry date ascending. Documents without an expiry sort last: the listing
// exists to surface what expires soonest.
func (l *Ledger) ListDocuments() ([]DocumentRow, error) {
	var rows []DocumentRow
	err := l.db.Model(&model.Document{}).
		Select("documents.*, tenants.full_name AS tenant_name").
		Joins("JOIN tenants ON tenants.id = documents.tenant_id").
		Order("documents.expiry_date IS NULL, documents.expiry_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, &StorageError{Op: "list documents", Err: err}
	}
	return rows, nil
}
