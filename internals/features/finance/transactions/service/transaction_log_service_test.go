// file: internals/features/finance/transactions/service/transaction_log_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "madrasaku_backend/internals/features/finance/transactions/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TransactionLog{}))
	return db
}

func validEntry() *model.TransactionLog {
	return &model.TransactionLog{
		TransactionLogType:           model.TransactionTypeIncome,
		TransactionLogReferenceID:    uuid.New(),
		TransactionLogReferenceModel: model.ReferenceModelFeeCollection,
		TransactionLogAmountIDR:      250_000,
		TransactionLogDescription:    "Penerimaan monthly 01/2026 (FEE-2026-000001)",
		TransactionLogPerformedBy:    uuid.New(),
	}
}

func TestAppend(t *testing.T) {
	db := newTestDB(t)

	entry := validEntry()
	require.NoError(t, Append(context.Background(), db, entry))

	assert.NotEqual(t, uuid.Nil, entry.TransactionLogID)
	assert.False(t, entry.TransactionLogCreatedAt.IsZero())

	var stored model.TransactionLog
	require.NoError(t, db.First(&stored, "transaction_log_id = ?", entry.TransactionLogID).Error)
	assert.Equal(t, 250_000, stored.TransactionLogAmountIDR)
}

func TestAppendRejectsInvalidEntries(t *testing.T) {
	db := newTestDB(t)

	tests := []struct {
		name   string
		mutate func(*model.TransactionLog)
	}{
		{"type tidak valid", func(e *model.TransactionLog) { e.TransactionLogType = "donasi" }},
		{"reference model tidak dikenal", func(e *model.TransactionLog) { e.TransactionLogReferenceModel = "Invoice" }},
		{"reference id kosong", func(e *model.TransactionLog) { e.TransactionLogReferenceID = uuid.Nil }},
		{"amount negatif", func(e *model.TransactionLog) { e.TransactionLogAmountIDR = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.mutate(entry)
			assert.Error(t, Append(context.Background(), db, entry))
		})
	}

	var count int64
	require.NoError(t, db.Model(&model.TransactionLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestValidReferenceModel(t *testing.T) {
	assert.True(t, ValidReferenceModel(model.ReferenceModelFeeCollection))
	assert.True(t, ValidReferenceModel(model.ReferenceModelSalaryPayment))
	assert.True(t, ValidReferenceModel(model.ReferenceModelExpense))
	assert.False(t, ValidReferenceModel("Invoice"))
	assert.False(t, ValidReferenceModel(""))
}
