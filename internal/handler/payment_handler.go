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

// PaymentRequest defines the structure for rent payment recording requests.
// ReceiptSourcePath is a local file to pull into the attachment store.
type PaymentRequest struct {
	TenantID          uint   `json:"tenant_id"`
	PropertyID        *uint  `json:"property_id"`
	AmountPaise       int64  `json:"amount_paise"`
	PaymentDate       string `json:"payment_date"`
	MonthYear         string `json:"month_year"`
	Method            string `json:"method"`
	LateFeePaise      int64  `json:"late_fee_paise"`
	Notes             string `json:"notes"`
	ReceiptSourcePath string `json:"receipt_source_path"`
}

// PaymentResponse is a payment row with display-formatted amounts
type PaymentResponse struct {
	ledger.PaymentRow
	AmountDisplay  string `json:"amount_display"`
	LateFeeDisplay string `json:"late_fee_display"`
}

// CreatePayment handles recording a rent payment, storing the receipt first
// when one is attached. A failed receipt copy aborts the insert.
func CreatePayment(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Recording rent payment")

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	receiptPath := ""
	if req.ReceiptSourcePath != "" {
		path, stored, err := attachments.Save(req.ReceiptSourcePath, attachment.CategoryDocuments)
		if err != nil {
			log.Error("Failed to store receipt",
				zap.String("source", req.ReceiptSourcePath),
				zap.Error(err))
			return writeLedgerError(c, err)
		}
		if stored {
			receiptPath = path
			prometheus.RecordAttachmentStore(string(attachment.CategoryDocuments))
		}
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	payment, err := getLedger().AddRentPayment(ledger.PaymentInput{
		TenantID:     req.TenantID,
		PropertyID:   req.PropertyID,
		AmountPaise:  req.AmountPaise,
		PaymentDate:  req.PaymentDate,
		MonthYear:    req.MonthYear,
		Method:       req.Method,
		LateFeePaise: req.LateFeePaise,
		Notes:        req.Notes,
		ReceiptPath:  receiptPath,
	})
	if err != nil {
		log.Error("Failed to record payment",
			zap.Uint("tenant_id", req.TenantID),
			zap.Int64("amount_paise", req.AmountPaise),
			zap.Error(err))
		return writeLedgerError(c, err)
	}

	prometheus.RecordPaymentOperation("create")
	log.Info("Payment recorded successfully",
		zap.Uint("payment_id", payment.ID),
		zap.Uint("tenant_id", payment.TenantID),
		zap.String("month_year", payment.MonthYear))
	return c.JSON(http.StatusCreated, payment)
}

// ListPayments handles retrieving all rent payments with the tenant's name,
// most recent first
func ListPayments(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())

	rows, err := getLedger().ListRentPayments()
	if err != nil {
		log.Error("Failed to list payments", zap.Error(err))
		return writeLedgerError(c, err)
	}

	responses := make([]PaymentResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, PaymentResponse{
			PaymentRow:     row,
			AmountDisplay:  FormatINR(row.AmountPaise),
			LateFeeDisplay: FormatINR(row.LateFeePaise),
		})
	}

	log.Info("Payments retrieved successfully", zap.Int("count", len(responses)))
	return c.JSON(http.StatusOK, responses)
}
