// file: internals/features/finance/expenses/service/expense_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "madrasaku_backend/internals/features/finance/expenses/model"
	feeservice "madrasaku_backend/internals/features/finance/fees/service"
	trxmodel "madrasaku_backend/internals/features/finance/transactions/model"
	trxservice "madrasaku_backend/internals/features/finance/transactions/service"
)

type CreateExpenseInput struct {
	Category    model.ExpenseCategory
	AmountIDR   int
	Description string
	RecordedBy  uuid.UUID
	BranchID    *uuid.UUID
}

// Create mencatat pengeluaran + log EXPENSE dalam satu transaksi.
// Nomor kwitansi (EXP-YYYY-NNNNNN) diambil di dalam transaksi yang sama.
func Create(ctx context.Context, db *gorm.DB, in CreateExpenseInput) (*model.Expense, error) {
	if !in.Category.Valid() {
		return nil, &feeservice.Error{Kind: feeservice.KindValidation, Message: "kategori expense tidak valid"}
	}
	if in.AmountIDR <= 0 {
		return nil, &feeservice.Error{Kind: feeservice.KindValidation, Message: "nominal expense harus > 0"}
	}
	if in.Description == "" {
		return nil, &feeservice.Error{Kind: feeservice.KindValidation, Message: "deskripsi expense wajib diisi"}
	}

	var out *model.Expense
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		receiptNo, err := feeservice.NextReceiptNumber(ctx, tx, feeservice.ReceiptKindExpense, time.Now().Year())
		if err != nil {
			return err
		}

		exp := model.Expense{
			ExpenseReceiptNo:   receiptNo,
			ExpenseCategory:    in.Category,
			ExpenseAmountIDR:   in.AmountIDR,
			ExpenseDescription: in.Description,
			ExpenseRecordedBy:  in.RecordedBy,
			ExpenseBranchID:    in.BranchID,
		}
		if err := tx.Create(&exp).Error; err != nil {
			if err == gorm.ErrDuplicatedKey {
				return &feeservice.Error{Kind: feeservice.KindConflict, Message: "nomor kwitansi bentrok, ulangi request"}
			}
			return err
		}

		if err := trxservice.Append(ctx, tx, &trxmodel.TransactionLog{
			TransactionLogType:           trxmodel.TransactionTypeExpense,
			TransactionLogReferenceID:    exp.ExpenseID,
			TransactionLogReferenceModel: trxmodel.ReferenceModelExpense,
			TransactionLogAmountIDR:      exp.ExpenseAmountIDR,
			TransactionLogDescription:    "Expense " + string(exp.ExpenseCategory) + ": " + exp.ExpenseDescription,
			TransactionLogPerformedBy:    in.RecordedBy,
			TransactionLogBranchID:       in.BranchID,
		}); err != nil {
			return err
		}

		out = &exp
		return nil
	})
	if err != nil {
		if _, ok := feeservice.AsError(err); ok {
			return nil, err
		}
		return nil, &feeservice.Error{Kind: feeservice.KindInternal, Message: "gagal mencatat expense"}
	}
	return out, nil
}
