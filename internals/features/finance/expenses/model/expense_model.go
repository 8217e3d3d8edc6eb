// file: internals/features/finance/expenses/model/expense_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseCategory string

const (
	ExpenseCategorySalary      ExpenseCategory = "salary"
	ExpenseCategoryUtility     ExpenseCategory = "utility"
	ExpenseCategoryMaintenance ExpenseCategory = "maintenance"
	ExpenseCategorySupplies    ExpenseCategory = "supplies"
	ExpenseCategoryOther       ExpenseCategory = "other"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseCategorySalary, ExpenseCategoryUtility, ExpenseCategoryMaintenance,
		ExpenseCategorySupplies, ExpenseCategoryOther:
		return true
	}
	return false
}

/* ==============================================
   MODEL - expenses (pengeluaran operasional)
============================================== */

type Expense struct {
	ExpenseID        uuid.UUID `gorm:"column:expense_id;type:uuid;primaryKey" json:"expense_id"`
	ExpenseReceiptNo string    `gorm:"column:expense_receipt_no;type:varchar(20);not null;uniqueIndex" json:"expense_receipt_no"`

	ExpenseCategory    ExpenseCategory `gorm:"column:expense_category;type:varchar(20);not null;index" json:"expense_category"`
	ExpenseAmountIDR   int             `gorm:"column:expense_amount_idr;type:int;not null;check:expense_amount_idr>0" json:"expense_amount_idr"`
	ExpenseDescription string          `gorm:"column:expense_description;type:text;not null" json:"expense_description"`

	ExpenseRecordedBy uuid.UUID  `gorm:"column:expense_recorded_by;type:uuid;not null;index" json:"expense_recorded_by"`
	ExpenseBranchID   *uuid.UUID `gorm:"column:expense_branch_id;type:uuid;index" json:"expense_branch_id,omitempty"`

	ExpenseCreatedAt time.Time `gorm:"column:expense_created_at;not null;index" json:"expense_created_at"`
	ExpenseUpdatedAt time.Time `gorm:"column:expense_updated_at;not null" json:"expense_updated_at"`
}

func (Expense) TableName() string { return "expenses" }

func (m *Expense) BeforeCreate(tx *gorm.DB) error {
	if m.ExpenseID == uuid.Nil {
		m.ExpenseID = uuid.New()
	}
	now := time.Now()
	if m.ExpenseCreatedAt.IsZero() {
		m.ExpenseCreatedAt = now
	}
	if m.ExpenseUpdatedAt.IsZero() {
		m.ExpenseUpdatedAt = now
	}
	return nil
}

func (m *Expense) BeforeUpdate(tx *gorm.DB) error {
	m.ExpenseUpdatedAt = time.Now()
	return nil
}
