// file: internals/features/finance/expenses/dto/expense_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "madrasaku_backend/internals/features/finance/expenses/model"
	service "madrasaku_backend/internals/features/finance/expenses/service"
)

type CreateExpenseRequest struct {
	ExpenseCategory    model.ExpenseCategory `json:"expense_category" validate:"required"`
	ExpenseAmountIDR   int                   `json:"expense_amount_idr" validate:"required,gt=0"`
	ExpenseDescription string                `json:"expense_description" validate:"required,min=3"`
	ExpenseBranchID    *uuid.UUID            `json:"expense_branch_id,omitempty"`
}

func (r CreateExpenseRequest) ToInput(recordedBy uuid.UUID) service.CreateExpenseInput {
	return service.CreateExpenseInput{
		Category:    r.ExpenseCategory,
		AmountIDR:   r.ExpenseAmountIDR,
		Description: r.ExpenseDescription,
		RecordedBy:  recordedBy,
		BranchID:    r.ExpenseBranchID,
	}
}

type ExpenseResponse struct {
	ExpenseID        uuid.UUID `json:"expense_id"`
	ExpenseReceiptNo string    `json:"expense_receipt_no"`

	ExpenseCategory    model.ExpenseCategory `json:"expense_category"`
	ExpenseAmountIDR   int                   `json:"expense_amount_idr"`
	ExpenseDescription string                `json:"expense_description"`

	ExpenseRecordedBy uuid.UUID  `json:"expense_recorded_by"`
	ExpenseBranchID   *uuid.UUID `json:"expense_branch_id,omitempty"`

	ExpenseCreatedAt time.Time `json:"expense_created_at"`
	ExpenseUpdatedAt time.Time `json:"expense_updated_at"`
}

func ToExpenseResponse(m model.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:          m.ExpenseID,
		ExpenseReceiptNo:   m.ExpenseReceiptNo,
		ExpenseCategory:    m.ExpenseCategory,
		ExpenseAmountIDR:   m.ExpenseAmountIDR,
		ExpenseDescription: m.ExpenseDescription,
		ExpenseRecordedBy:  m.ExpenseRecordedBy,
		ExpenseBranchID:    m.ExpenseBranchID,
		ExpenseCreatedAt:   m.ExpenseCreatedAt,
		ExpenseUpdatedAt:   m.ExpenseUpdatedAt,
	}
}

func ToExpenseResponses(list []model.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToExpenseResponse(m))
	}
	return out
}
