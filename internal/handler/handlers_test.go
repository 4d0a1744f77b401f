package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"tenant-ledger/internal/attachment"
	"tenant-ledger/internal/handler"
	"tenant-ledger/pkg/config"
	"tenant-ledger/pkg/database"
	"tenant-ledger/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Metrics register against the default prometheus registry, so initialize
// them once for the whole package.
var metricsOnce sync.Once

func setupServer(t *testing.T) *echo.Echo {
	base := t.TempDir()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", Env: "development"},
		DB:     config.DatabaseConfig{Path: ":memory:"},
		Storage: config.StorageConfig{
			PhotoDir:    filepath.Join(base, "tenant_photos"),
			DocumentDir: filepath.Join(base, "tenant_documents"),
		},
		Log:     config.LogConfig{Level: "error"},
		Metrics: config.MetricsConfig{Prefix: "ledger_test"},
	}

	metricsOnce.Do(func() { prometheus.InitMetrics(cfg) })
	require.NoError(t, database.InitDB(cfg))

	store := attachment.NewStore(cfg.Storage.PhotoDir, cfg.Storage.DocumentDir)
	require.NoError(t, store.Init())
	handler.Init(store)

	e := echo.New()
	e.POST("/api/tenants", handler.CreateTenant)
	e.GET("/api/tenants", handler.ListTenants)
	e.GET("/api/tenants/:id", handler.GetTenant)
	e.PUT("/api/tenants/:id", handler.UpdateTenant)
	e.POST("/api/tenants/:id/active", handler.SetTenantStatus)
	e.POST("/api/payments", handler.CreatePayment)
	e.GET("/api/payments", handler.ListPayments)
	e.POST("/api/documents", handler.CreateDocument)
	e.GET("/api/documents", handler.ListDocuments)
	e.POST("/api/properties", handler.CreateProperty)
	e.GET("/api/properties", handler.ListProperties)
	e.POST("/api/attachments", handler.StoreAttachment)
	e.GET("/health", handler.Health)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndListTenants(t *testing.T) {
	e := setupServer(t)

	rec := doJSON(e, http.MethodPost, "/api/tenants", `{
		"full_name": "Asha Rao",
		"phone": "9876543210",
		"move_in_date": "2024-01-15",
		"rent_paise": 1500000
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created handler.TenantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(3000000), created.DepositPaise)
	assert.Equal(t, "₹15,000.00", created.RentDisplay)
	assert.Equal(t, "₹30,000.00", created.DepositDisplay)

	rec = doJSON(e, http.MethodGet, "/api/tenants", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tenants []handler.TenantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tenants))
	require.Len(t, tenants, 1)
	assert.Equal(t, "Asha Rao", tenants[0].FullName)
	assert.True(t, tenants[0].IsActive)
}

func TestCreateTenant_ValidationMapsTo400(t *testing.T) {
	e := setupServer(t)

	rec := doJSON(e, http.MethodPost, "/api/tenants", `{
		"full_name": "Asha Rao",
		"phone": "123",
		"move_in_date": "2024-01-15",
		"rent_paise": 1500000
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "phone")
}

func TestCreatePayment_UnknownTenantMapsTo422(t *testing.T) {
	e := setupServer(t)

	rec := doJSON(e, http.MethodPost, "/api/payments", `{
		"tenant_id": 99,
		"amount_paise": 1500000,
		"payment_date": "2024-04-05",
		"month_year": "04-2024",
		"method": "Cash"
	}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetTenant_MapsTo404(t *testing.T) {
	e := setupServer(t)

	rec := doJSON(e, http.MethodGet, "/api/tenants/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPaymentFlowOverHTTP(t *testing.T) {
	e := setupServer(t)

	rec := doJSON(e, http.MethodPost, "/api/tenants", `{
		"full_name": "Asha Rao",
		"phone": "9876543210",
		"move_in_date": "2024-01-15",
		"rent_paise": 15000
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var tenant handler.TenantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tenant))

	rec = doJSON(e, http.MethodPost, "/api/payments", `{
		"tenant_id": 1,
		"amount_paise": 15000,
		"payment_date": "2024-04-05",
		"month_year": "04-2024",
		"method": "UPI"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/payments", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var payments []handler.PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payments))
	require.Len(t, payments, 1)
	assert.Equal(t, "Asha Rao", payments[0].TenantName)
	assert.Equal(t, int64(15000), payments[0].AmountPaise)
	assert.Equal(t, "₹150.00", payments[0].AmountDisplay)
}

func TestCreateDocument_StoresFileBeforeRow(t *testing.T) {
	e := setupServer(t)

	doJSON(e, http.MethodPost, "/api/tenants", `{
		"full_name": "Asha Rao",
		"phone": "9876543210",
		"move_in_date": "2024-01-15",
		"rent_paise": 1500000
	}`)

	source := filepath.Join(t.TempDir(), "aadhaar.pdf")
	require.NoError(t, os.WriteFile(source, []byte("scan bytes"), 0o644))

	body, err := json.Marshal(map[string]any{
		"tenant_id":        1,
		"doc_type":         "Aadhaar",
		"file_source_path": source,
	})
	require.NoError(t, err)

	rec := doJSON(e, http.MethodPost, "/api/documents", string(body))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/documents", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Aadhaar")
	assert.Contains(t, rec.Body.String(), "Asha Rao")
}

func TestCreateDocument_MissingSourceFileAborts(t *testing.T) {
	e := setupServer(t)

	doJSON(e, http.MethodPost, "/api/tenants", `{
		"full_name": "Asha Rao",
		"phone": "9876543210",
		"move_in_date": "2024-01-15",
		"rent_paise": 1500000
	}`)

	body, err := json.Marshal(map[string]any{
		"tenant_id":        1,
		"doc_type":         "Aadhaar",
		"file_source_path": filepath.Join(t.TempDir(), "missing.pdf"),
	})
	require.NoError(t, err)

	rec := doJSON(e, http.MethodPost, "/api/documents", string(body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// No document row was created
	rec = doJSON(e, http.MethodGet, "/api/documents", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Empty(t, rows)
}

func TestDatabaseOperationDurationObserved(t *testing.T) {
	e := setupServer(t)

	rec := doJSON(e, http.MethodPost, "/api/tenants", `{
		"full_name": "Asha Rao",
		"phone": "9876543210",
		"move_in_date": "2024-01-15",
		"rent_paise": 1500000
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/tenants", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Both the insert and query paths must have observed a duration,
	// so the histogram carries at least those two label children.
	assert.GreaterOrEqual(t, testutil.CollectAndCount(&prometheus.DbOperationDuration), 2)
}

func TestStoreAttachmentEndpoint(t *testing.T) {
	e := setupServer(t)

	source := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(source, []byte("jpeg bytes"), 0o644))

	body, err := json.Marshal(map[string]string{
		"source_path": source,
		"category":    "photos",
	})
	require.NoError(t, err)

	rec := doJSON(e, http.MethodPost, "/api/attachments", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.AttachmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Stored)
	assert.FileExists(t, resp.Path)

	// Missing source: "no file" result, not an error
	body, err = json.Marshal(map[string]string{
		"source_path": filepath.Join(t.TempDir(), "nope.jpg"),
		"category":    "photos",
	})
	require.NoError(t, err)
	rec = doJSON(e, http.MethodPost, "/api/attachments", string(body))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Stored)
	assert.Empty(t, resp.Path)
}
