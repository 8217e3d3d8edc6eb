// file: internals/features/finance/fees/dto/fee_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "madrasaku_backend/internals/features/finance/fees/model"
	service "madrasaku_backend/internals/features/finance/fees/service"
)

////////////////////////////////////////////////////////////////////////////////
// FEE COLLECTIONS - DTO
////////////////////////////////////////////////////////////////////////////////

// Register (POST /fees)
type RegisterFeeRequest struct {
	FeeStudentID      uuid.UUID           `json:"fee_student_id" validate:"required"`
	FeeType           model.FeeType       `json:"fee_type" validate:"required"`
	FeeReceivedAmount int                 `json:"fee_received_amount_idr" validate:"min=0"`
	FeeMonth          *int                `json:"fee_month,omitempty" validate:"omitempty,min=1,max=12"`
	FeeYear           *int                `json:"fee_year,omitempty" validate:"omitempty,min=2000,max=2100"`
	FeePayableAmount  *int                `json:"fee_payable_amount_idr,omitempty"` // wajib utk utility/other
	FeePaymentMethod  model.PaymentMethod `json:"fee_payment_method,omitempty"`
	FeeRemarks        *string             `json:"fee_remarks,omitempty"`
}

// Update / koreksi (PATCH /fees/:id) - partial
type UpdateFeeRequest struct {
	FeeMonth          *int                 `json:"fee_month,omitempty" validate:"omitempty,min=1,max=12"`
	FeeYear           *int                 `json:"fee_year,omitempty" validate:"omitempty,min=2000,max=2100"`
	FeeBaseAmount     *int                 `json:"fee_base_amount_idr,omitempty" validate:"omitempty,min=0"`
	FeePayableAmount  *int                 `json:"fee_payable_amount_idr,omitempty"`
	FeeReceivedAmount *int                 `json:"fee_received_amount_idr,omitempty" validate:"omitempty,min=0"`
	FeePaymentMethod  *model.PaymentMethod `json:"fee_payment_method,omitempty"`
	FeeRemarks        *string              `json:"fee_remarks,omitempty"`
}

// Pelunasan admission (POST /fees/pay-admission)
type PayAdmissionDueRequest struct {
	FeeStudentID      uuid.UUID           `json:"fee_student_id" validate:"required"`
	FeeReceivedAmount int                 `json:"fee_received_amount_idr" validate:"required,gt=0"`
	FeePaymentMethod  model.PaymentMethod `json:"fee_payment_method,omitempty"`
}

// Response
type FeeCollectionResponse struct {
	FeeCollectionID        uuid.UUID `json:"fee_collection_id"`
	FeeCollectionReceiptNo string    `json:"fee_collection_receipt_no"`

	FeeCollectionStudentID uuid.UUID `json:"fee_collection_student_id"`
	FeeCollectionSessionID uuid.UUID `json:"fee_collection_session_id"`

	FeeCollectionFeeType model.FeeType `json:"fee_collection_fee_type"`
	FeeCollectionMonth   *int          `json:"fee_collection_month,omitempty"`
	FeeCollectionYear    *int          `json:"fee_collection_year,omitempty"`

	FeeCollectionBaseAmountIDR     int `json:"fee_collection_base_amount_idr"`
	FeeCollectionPayableAmountIDR  int `json:"fee_collection_payable_amount_idr"`
	FeeCollectionReceivedAmountIDR int `json:"fee_collection_received_amount_idr"`
	FeeCollectionDueAmountIDR      int `json:"fee_collection_due_amount_idr"`
	FeeCollectionAdvanceAmountIDR  int `json:"fee_collection_advance_amount_idr"`

	FeeCollectionPaymentStatus model.PaymentStatus `json:"fee_collection_payment_status"`
	FeeCollectionPaymentMethod model.PaymentMethod `json:"fee_collection_payment_method"`

	FeeCollectionCollectorID uuid.UUID  `json:"fee_collection_collector_id"`
	FeeCollectionBranchID    *uuid.UUID `json:"fee_collection_branch_id,omitempty"`

	FeeCollectionRemarks *string `json:"fee_collection_remarks,omitempty"`

	FeeCollectionIsDeleted bool       `json:"fee_collection_is_deleted"`
	FeeCollectionDeletedAt *time.Time `json:"fee_collection_deleted_at,omitempty"`

	FeeCollectionCreatedAt time.Time `json:"fee_collection_created_at"`
	FeeCollectionUpdatedAt time.Time `json:"fee_collection_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func (r RegisterFeeRequest) ToInput(collectorID uuid.UUID) service.RegisterFeeInput {
	return service.RegisterFeeInput{
		StudentID:       r.FeeStudentID,
		FeeType:         r.FeeType,
		ReceivedAmount:  r.FeeReceivedAmount,
		Month:           r.FeeMonth,
		Year:            r.FeeYear,
		PayableOverride: r.FeePayableAmount,
		PaymentMethod:   r.FeePaymentMethod,
		CollectorID:     collectorID,
		Remarks:         r.FeeRemarks,
	}
}

func (r UpdateFeeRequest) ToPatch() service.UpdateFeePatch {
	return service.UpdateFeePatch{
		Month:          r.FeeMonth,
		Year:           r.FeeYear,
		BaseAmount:     r.FeeBaseAmount,
		PayableAmount:  r.FeePayableAmount,
		ReceivedAmount: r.FeeReceivedAmount,
		PaymentMethod:  r.FeePaymentMethod,
		Remarks:        r.FeeRemarks,
	}
}

func ToFeeCollectionResponse(m model.FeeCollection) FeeCollectionResponse {
	return FeeCollectionResponse{
		FeeCollectionID:                m.FeeCollectionID,
		FeeCollectionReceiptNo:         m.FeeCollectionReceiptNo,
		FeeCollectionStudentID:         m.FeeCollectionStudentID,
		FeeCollectionSessionID:         m.FeeCollectionSessionID,
		FeeCollectionFeeType:           m.FeeCollectionFeeType,
		FeeCollectionMonth:             m.FeeCollectionMonth,
		FeeCollectionYear:              m.FeeCollectionYear,
		FeeCollectionBaseAmountIDR:     m.FeeCollectionBaseAmountIDR,
		FeeCollectionPayableAmountIDR:  m.FeeCollectionPayableAmountIDR,
		FeeCollectionReceivedAmountIDR: m.FeeCollectionReceivedAmountIDR,
		FeeCollectionDueAmountIDR:      m.FeeCollectionDueAmountIDR,
		FeeCollectionAdvanceAmountIDR:  m.FeeCollectionAdvanceAmountIDR,
		FeeCollectionPaymentStatus:     m.FeeCollectionPaymentStatus,
		FeeCollectionPaymentMethod:     m.FeeCollectionPaymentMethod,
		FeeCollectionCollectorID:       m.FeeCollectionCollectorID,
		FeeCollectionBranchID:          m.FeeCollectionBranchID,
		FeeCollectionRemarks:           m.FeeCollectionRemarks,
		FeeCollectionIsDeleted:         m.FeeCollectionIsDeleted,
		FeeCollectionDeletedAt:         m.FeeCollectionDeletedAt,
		FeeCollectionCreatedAt:         m.FeeCollectionCreatedAt,
		FeeCollectionUpdatedAt:         m.FeeCollectionUpdatedAt,
	}
}

func ToFeeCollectionResponses(list []model.FeeCollection) []FeeCollectionResponse {
	out := make([]FeeCollectionResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeeCollectionResponse(v))
	}
	return out
}
