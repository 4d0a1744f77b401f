package handler

import (
	"net/http"
	"strconv"
	"time"

	"tenant-ledger/internal/attachment"
	"tenant-ledger/internal/ledger"
	"tenant-ledger/internal/model"
	"tenant-ledger/pkg/logger"
	"tenant-ledger/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TenantRequest defines the structure for tenant creation/update requests.
// PhotoSourcePath is a local file to pull into the attachment store; the
// stored path ends up on the tenant row. The security deposit is not part of
// the request: the ledger computes it.
type TenantRequest struct {
	FullName        string `json:"full_name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	MoveInDate      string `json:"move_in_date"`
	MoveOutDate     string `json:"move_out_date"`
	RentPaise       int64  `json:"rent_paise"`
	Notes           string `json:"notes"`
	PhotoSourcePath string `json:"photo_source_path"`
	DepositRefunded bool   `json:"deposit_refunded"`
}

// TenantStatusRequest toggles a tenant's active flag
type TenantStatusRequest struct {
	Active bool `json:"active"`
}

// TenantResponse is a tenant with display-formatted amounts
type TenantResponse struct {
	model.Tenant
	RentDisplay    string `json:"rent_display"`
	DepositDisplay string `json:"deposit_display"`
}

func tenantResponse(t model.Tenant) TenantResponse {
	return TenantResponse{
		Tenant:         t,
		RentDisplay:    FormatINR(t.RentPaise),
		DepositDisplay: FormatINR(t.DepositPaise),
	}
}

// CreateTenant handles adding a new tenant, storing the ID photo first when
// one is attached. A failed photo copy aborts the insert.
func CreateTenant(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new tenant")

	var req TenantRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	photoPath := ""
	if req.PhotoSourcePath != "" {
		path, stored, err := attachments.Save(req.PhotoSourcePath, attachment.CategoryPhotos)
		if err != nil {
			log.Error("Failed to store tenant photo",
				zap.String("source", req.PhotoSourcePath),
				zap.Error(err))
			return writeLedgerError(c, err)
		}
		if stored {
			photoPath = path
			prometheus.RecordAttachmentStore(string(attachment.CategoryPhotos))
		}
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	tenant, err := getLedger().AddTenant(ledger.TenantInput{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		MoveInDate: req.MoveInDate,
		RentPaise:  req.RentPaise,
		Notes:      req.Notes,
		PhotoPath:  photoPath,
	})
	if err != nil {
		log.Error("Failed to create tenant",
			zap.String("name", req.FullName),
			zap.Error(err))
		return writeLedgerError(c, err)
	}

	prometheus.RecordTenantOperation("create")
	log.Info("Tenant created successfully",
		zap.Uint("tenant_id", tenant.ID),
		zap.String("name", tenant.FullName))
	return c.JSON(http.StatusCreated, tenantResponse(*tenant))
}

// ListTenants handles retrieving all tenants, active first then by name.
// Pass ?active=true to list only active tenants (the payment and document
// forms use this for their tenant pickers).
func ListTenants(c echo.Context) error {
	log := logger.FromContext(c)

	filter := ledger.TenantFilter{}
	if active := c.QueryParam("active"); active != "" {
		activeOnly, err := strconv.ParseBool(active)
		if err != nil {
			log.Warn("Invalid active parameter", zap.String("value", active), zap.Error(err))
		} else {
			filter.ActiveOnly = activeOnly
		}
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	tenants, err := getLedger().ListTenants(filter)
	if err != nil {
		log.Error("Failed to list tenants", zap.Error(err))
		return writeLedgerError(c, err)
	}

	responses := make([]TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		responses = append(responses, tenantResponse(t))
	}

	log.Info("Tenants retrieved successfully", zap.Int("count", len(responses)))
	return c.JSON(http.StatusOK, responses)
}

// GetTenant handles retrieving a single tenant by ID
func GetTenant(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tenant id"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	tenant, err := getLedger().GetTenant(uint(id))
	if err != nil {
		log.Error("Tenant not found", zap.Uint64("tenant_id", id), zap.Error(err))
		return writeLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, tenantResponse(*tenant))
}

// UpdateTenant handles editing an existing tenant
func UpdateTenant(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tenant id"})
	}
	log.Info("Updating tenant", zap.Uint64("tenant_id", id))

	var req TenantRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	photoPath := ""
	if req.PhotoSourcePath != "" {
		path, stored, err := attachments.Save(req.PhotoSourcePath, attachment.CategoryPhotos)
		if err != nil {
			log.Error("Failed to store tenant photo",
				zap.String("source", req.PhotoSourcePath),
				zap.Error(err))
			return writeLedgerError(c, err)
		}
		if stored {
			photoPath = path
			prometheus.RecordAttachmentStore(string(attachment.CategoryPhotos))
		}
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	tenant, err := getLedger().UpdateTenant(uint(id), ledger.TenantUpdate{
		FullName:        req.FullName,
		Phone:           req.Phone,
		Email:           req.Email,
		MoveInDate:      req.MoveInDate,
		MoveOutDate:     req.MoveOutDate,
		RentPaise:       req.RentPaise,
		Notes:           req.Notes,
		PhotoPath:       photoPath,
		DepositRefunded: req.DepositRefunded,
	})
	if err != nil {
		log.Error("Failed to update tenant", zap.Uint64("tenant_id", id), zap.Error(err))
		return writeLedgerError(c, err)
	}

	prometheus.RecordTenantOperation("update")
	log.Info("Tenant updated successfully",
		zap.Uint("tenant_id", tenant.ID),
		zap.String("name", tenant.FullName))
	return c.JSON(http.StatusOK, tenantResponse(*tenant))
}

// SetTenantStatus handles activating or deactivating a tenant. Deactivation
// replaces deletion: the record and its history stay.
func SetTenantStatus(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tenant id"})
	}

	var req TenantStatusRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := getLedger().SetTenantActive(uint(id), req.Active); err != nil {
		log.Error("Failed to set tenant status",
			zap.Uint64("tenant_id", id),
			zap.Bool("active", req.Active),
			zap.Error(err))
		return writeLedgerError(c, err)
	}

	prometheus.RecordTenantOperation("set_status")
	log.Info("Tenant status updated",
		zap.Uint64("tenant_id", id),
		zap.Bool("active", req.Active))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Tenant status updated",
	})
}
