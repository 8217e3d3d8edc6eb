// file: internals/features/finance/transactions/service/transaction_log_service.go
package service

import (
	"context"
	"fmt"

	model "madrasaku_backend/internals/features/finance/transactions/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ValidReferenceModel: discriminator yang dikenal utk referensi polimorfik.
func ValidReferenceModel(s string) bool {
	switch s {
	case model.ReferenceModelFeeCollection, model.ReferenceModelSalaryPayment, model.ReferenceModelExpense:
		return true
	}
	return false
}

// Append menambah satu entry log - murni insert, tidak pernah update.
// Setiap perubahan received_amount pada fee/salary dan setiap expense
// wajib lewat sini tepat satu kali (di transaksi yang sama dengan
// mutasi record sumbernya).
func Append(ctx context.Context, tx *gorm.DB, entry *model.TransactionLog) error {
	if !entry.TransactionLogType.Valid() {
		return fmt.Errorf("transaction log type tidak valid: %s", entry.TransactionLogType)
	}
	if !ValidReferenceModel(entry.TransactionLogReferenceModel) {
		return fmt.Errorf("reference model tidak dikenal: %s", entry.TransactionLogReferenceModel)
	}
	if entry.TransactionLogReferenceID == uuid.Nil {
		return fmt.Errorf("reference id kosong")
	}
	if entry.TransactionLogAmountIDR < 0 {
		return fmt.Errorf("amount log tidak boleh negatif")
	}
	return tx.WithContext(ctx).Create(entry).Error
}
