package handler

import (
	"net/http"
	"time"

	"tenant-ledger/internal/ledger"
	"tenant-ledger/pkg/logger"
	"tenant-ledger/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PropertyRequest defines the structure for property creation requests
type PropertyRequest struct {
	Address    string `json:"address"`
	UnitNumber string `json:"unit_number"`
	OwnerNotes string `json:"owner_notes"`
}

// CreateProperty handles adding a property lookup entry
func CreateProperty(c echo.Context) error {
	log := logger.FromContext(c)

	var req PropertyRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	property, err := getLedger().AddProperty(ledger.PropertyInput{
		Address:    req.Address,
		UnitNumber: req.UnitNumber,
		OwnerNotes: req.OwnerNotes,
	})
	if err != nil {
		log.Error("Failed to create property",
			zap.String("address", req.Address),
			zap.Error(err))
		return writeLedgerError(c, err)
	}

	log.Info("Property created successfully",
		zap.Uint("property_id", property.ID),
		zap.String("address", property.Address))
	return c.JSON(http.StatusCreated, property)
}

// ListProperties handles retrieving all properties
func ListProperties(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())

	properties, err := getLedger().ListProperties()
	if err != nil {
		log.Error("Failed to list properties", zap.Error(err))
		return writeLedgerError(c, err)
	}

	log.Info("Properties retrieved successfully", zap.Int("count", len(properties)))
	return c.JSON(http.StatusOK, properties)
}
