// file: internals/features/finance/transactions/dto/transaction_log_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "madrasaku_backend/internals/features/finance/transactions/model"
)

type TransactionLogResponse struct {
	TransactionLogID uuid.UUID `json:"transaction_log_id"`

	TransactionLogType model.TransactionType `json:"transaction_log_type"`

	TransactionLogReferenceID    uuid.UUID `json:"transaction_log_reference_id"`
	TransactionLogReferenceModel string    `json:"transaction_log_reference_model"`

	TransactionLogAmountIDR   int    `json:"transaction_log_amount_idr"`
	TransactionLogDescription string `json:"transaction_log_description"`

	TransactionLogPerformedBy uuid.UUID  `json:"transaction_log_performed_by"`
	TransactionLogBranchID    *uuid.UUID `json:"transaction_log_branch_id,omitempty"`

	TransactionLogCreatedAt time.Time `json:"transaction_log_created_at"`
}

func ToTransactionLogResponse(m model.TransactionLog) TransactionLogResponse {
	return TransactionLogResponse{
		TransactionLogID:             m.TransactionLogID,
		TransactionLogType:           m.TransactionLogType,
		TransactionLogReferenceID:    m.TransactionLogReferenceID,
		TransactionLogReferenceModel: m.TransactionLogReferenceModel,
		TransactionLogAmountIDR:      m.TransactionLogAmountIDR,
		TransactionLogDescription:    m.TransactionLogDescription,
		TransactionLogPerformedBy:    m.TransactionLogPerformedBy,
		TransactionLogBranchID:       m.TransactionLogBranchID,
		TransactionLogCreatedAt:      m.TransactionLogCreatedAt,
	}
}

func ToTransactionLogResponses(list []model.TransactionLog) []TransactionLogResponse {
	out := make([]TransactionLogResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToTransactionLogResponse(m))
	}
	return out
}
