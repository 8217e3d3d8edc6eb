// file: internals/features/finance/transactions/model/transaction_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM - jenis pergerakan uang
============================== */

type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "income"
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeAdjustment TransactionType = "adjustment"
	TransactionTypeReversal   TransactionType = "reversal"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeAdjustment, TransactionTypeReversal:
		return true
	}
	return false
}

/* ==============================
   Discriminator - model sumber
============================== */

const (
	ReferenceModelFeeCollection = "FeeCollection"
	ReferenceModelSalaryPayment = "SalaryPayment"
	ReferenceModelExpense       = "Expense"
)

/* ==============================================
   MODEL - transaction_logs (append-only)
============================================== */

// TransactionLog tidak pernah di-update; delete hanya ada sebagai
// override administratif (lihat controller).
type TransactionLog struct {
	TransactionLogID uuid.UUID `gorm:"column:transaction_log_id;type:uuid;primaryKey" json:"transaction_log_id"`

	TransactionLogType TransactionType `gorm:"column:transaction_log_type;type:varchar(12);not null;index" json:"transaction_log_type"`

	// Referensi polimorfik ke record sumber
	TransactionLogReferenceID    uuid.UUID `gorm:"column:transaction_log_reference_id;type:uuid;not null;index:idx_trx_reference,priority:2" json:"transaction_log_reference_id"`
	TransactionLogReferenceModel string    `gorm:"column:transaction_log_reference_model;type:varchar(30);not null;index:idx_trx_reference,priority:1" json:"transaction_log_reference_model"`

	TransactionLogAmountIDR   int    `gorm:"column:transaction_log_amount_idr;type:int;not null;check:transaction_log_amount_idr>=0;index" json:"transaction_log_amount_idr"`
	TransactionLogDescription string `gorm:"column:transaction_log_description;type:text;not null" json:"transaction_log_description"`

	TransactionLogPerformedBy uuid.UUID  `gorm:"column:transaction_log_performed_by;type:uuid;not null;index" json:"transaction_log_performed_by"`
	TransactionLogBranchID    *uuid.UUID `gorm:"column:transaction_log_branch_id;type:uuid;index" json:"transaction_log_branch_id,omitempty"`

	TransactionLogCreatedAt time.Time `gorm:"column:transaction_log_created_at;not null;index" json:"transaction_log_created_at"`
}

func (TransactionLog) TableName() string { return "transaction_logs" }

func (m *TransactionLog) BeforeCreate(tx *gorm.DB) error {
	if m.TransactionLogID == uuid.Nil {
		m.TransactionLogID = uuid.New()
	}
	if m.TransactionLogCreatedAt.IsZero() {
		m.TransactionLogCreatedAt = time.Now()
	}
	return nil
}
