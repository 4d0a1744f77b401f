package handler

import (
	"net/http"

	"tenant-ledger/internal/attachment"
	"tenant-ledger/pkg/logger"
	"tenant-ledger/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AttachmentRequest defines the structure for standalone store requests
type AttachmentRequest struct {
	SourcePath string `json:"source_path"`
	Category   string `json:"category"`
}

// AttachmentResponse reports where a file was stored. Stored is false when
// the source path did not exist (nothing was attached).
type AttachmentResponse struct {
	Path   string `json:"path"`
	Stored bool   `json:"stored"`
}

// StoreAttachment handles copying a local file into content-addressed
// storage without creating a row for it
func StoreAttachment(c echo.Context) error {
	log := logger.FromContext(c)

	var req AttachmentRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	path, stored, err := attachments.Save(req.SourcePath, attachment.Category(req.Category))
	if err != nil {
		log.Error("Failed to store attachment",
			zap.String("source", req.SourcePath),
			zap.String("category", req.Category),
			zap.Error(err))
		return writeLedgerError(c, err)
	}

	if stored {
		prometheus.RecordAttachmentStore(req.Category)
		log.Info("Attachment stored",
			zap.String("source", req.SourcePath),
			zap.String("path", path))
	} else {
		log.Info("Attachment source does not exist, nothing stored",
			zap.String("source", req.SourcePath))
	}

	return c.JSON(http.StatusOK, AttachmentResponse{Path: path, Stored: stored})
}
