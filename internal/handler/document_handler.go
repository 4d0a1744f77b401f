package handler

import (
	"net/http"
	"time"

	"tenant-ledger/internal/attachment"
	"tenant-ledger/internal/ledger"
	"tenant-ledger/pkg/logger"
	"tenant-ledger/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DocumentRequest defines the structure for document attach requests. The
// file itself is pulled from FileSourcePath; unlike photos and receipts it is
// required here, since a document row without a file is meaningless.
type DocumentRequest struct {
	TenantID       uint   `json:"tenant_id"`
	DocType        string `json:"doc_type"`
	FileSourcePath string `json:"file_source_path"`
	ExpiryDate     string `json:"expiry_date"`
}

// CreateDocument handles attaching a document to a tenant. The file is
// stored first; a missing source file or failed copy aborts the insert.
func CreateDocument(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Attaching document")

	var req DocumentRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if req.FileSourcePath == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid file_source_path: must not be empty",
		})
	}

	path, stored, err := attachments.Save(req.FileSourcePath, attachment.CategoryDocuments)
	if err != nil {
		log.Error("Failed to store document file",
			zap.String("source", req.FileSourcePath),
			zap.Error(err))
		return writeLedgerError(c, err)
	}
	if !stored {
		log.Warn("Document source file does not exist",
			zap.String("source", req.FileSourcePath))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid file_source_path: file does not exist",
		})
	}
	prometheus.RecordAttachmentStore(string(attachment.CategoryDocuments))

	defer prometheus.TrackDBOperation("insert")(time.Now())

	doc, err := getLedger().AddDocument(ledger.DocumentInput{
		TenantID:   req.TenantID,
		DocType:    req.DocType,
		FilePath:   path,
		ExpiryDate: req.ExpiryDate,
	})
	if err != nil {
		log.Error("Failed to attach document",
			zap.Uint("tenant_id", req.TenantID),
			zap.String("doc_type", req.DocType),
			zap.Error(err))
		return writeLedgerError(c, err)
	}

	prometheus.RecordDocumentOperation("create")
	log.Info("Document attached successfully",
		zap.Uint("doc_id", doc.ID),
		zap.Uint("tenant_id", doc.TenantID),
		zap.String("doc_type", doc.DocType))
	return c.JSON(http.StatusCreated, doc)
}

// ListDocuments handles retrieving all documents with the tenant's name,
// soonest expiry first, non-expiring last
func ListDocuments(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())

	rows, err := getLedger().ListDocuments()
	if err != nil {
		log.Error("Failed to list documents", zap.Error(err))
		return writeLedgerError(c, err)
	}

	log.Info("Documents retrieved successfully", zap.Int("count", len(rows)))
	return c.JSON(http.StatusOK, rows)
}
