package ledger_test

import (
	"testing"

	"tenant-ledger/internal/ledger"
	"tenant-ledger/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.Tenant{},
		&model.Property{},
		&model.RentPayment{},
		&model.Document{},
	)
	require.NoError(t, err)
	return db
}

func setupLedger(t *testing.T) (*ledger.Ledger, *gorm.DB) {
	db := setupTestDB(t)
	return ledger.New(db), db
}

func addTenant(t *testing.T, l *ledger.Ledger, name string) *model.Tenant {
	tenant, err := l.AddTenant(ledger.TenantInput{
		FullName:   name,
		Phone:      "9876543210",
		MoveInDate: "2024-01-01",
		RentPaise:  1500000,
	})
	require.NoError(t, err)
	return tenant
}
