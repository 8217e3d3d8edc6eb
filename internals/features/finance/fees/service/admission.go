// file: internals/features/finance/fees/service/admission.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "madrasaku_backend/internals/features/finance/fees/model"
	trxmodel "madrasaku_backend/internals/features/finance/transactions/model"
	trxservice "madrasaku_backend/internals/features/finance/transactions/service"
)

/* ==============================================
   Pelunasan tunggakan admission.

   Jalur rekonsiliasi khusus biaya admission:
   tanpa dimensi bulan/tahun, murni pengurangan
   tunggakan. Berbeda dari Register: received &
   advance pada fee record di-INCREMENT (additive),
   bukan overwrite; pasangan Balance Store tetap
   overwrite.
============================================== */

type AdmissionPaymentInput struct {
	StudentID      uuid.UUID
	ReceivedAmount int
	PaymentMethod  model.PaymentMethod
	CollectorID    uuid.UUID
}

func PayAdmissionDue(ctx context.Context, db *gorm.DB, in AdmissionPaymentInput) (*model.FeeCollection, error) {
	if in.ReceivedAmount <= 0 {
		return nil, validationErr("received_amount wajib positif", map[string]string{"received_amount": "gt=0"})
	}

	var settled *model.FeeCollection
	err := db.Transaction(func(tx *gorm.DB) error {
		student, session, err := loadStudentWithActiveSession(ctx, tx, in.StudentID)
		if err != nil {
			return err
		}

		// fee record admission dibuat saat enrollment; di sini hanya dilunasi
		var fee model.FeeCollection
		if err := tx.WithContext(ctx).
			First(&fee, `fee_collection_student_id = ?
				AND fee_collection_session_id = ?
				AND fee_collection_fee_type = ?
				AND fee_collection_is_deleted = ?`,
				student.StudentID, session.AcademicSessionID, model.FeeTypeAdmission, false).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("fee record admission belum ada utk siswa ini")
			}
			return internalErr(err, "gagal mengambil fee record admission")
		}

		bal := student.BalanceFor(model.FeeTypeAdmission)
		payable := bal.Due - bal.Advance
		if payable <= 0 {
			return conflictErr("tidak ada tunggakan admission yang tersisa")
		}

		// hanya PAID / PARTIAL - received > 0 sudah jadi precondition
		var due, advance int
		status := model.PaymentStatusPartial
		if in.ReceivedAmount >= payable {
			status = model.PaymentStatusPaid
			advance = in.ReceivedAmount - payable
		} else {
			due = payable - in.ReceivedAmount
		}

		// additive pada fee record (sengaja beda dari semantik overwrite Register)
		fee.FeeCollectionReceivedAmountIDR += in.ReceivedAmount
		fee.FeeCollectionAdvanceAmountIDR += advance
		fee.FeeCollectionDueAmountIDR = due
		fee.FeeCollectionPaymentStatus = status
		fee.FeeCollectionPaymentMethod = paymentMethodOrDefault(in.PaymentMethod)
		if err := tx.WithContext(ctx).Save(&fee).Error; err != nil {
			return internalErr(err, "gagal menyimpan pelunasan admission")
		}

		if err := saveBalance(ctx, tx, student, model.FeeTypeAdmission,
			model.FeeBalance{Due: due, Advance: advance}); err != nil {
			return internalErr(err, "gagal update balance store")
		}

		entry := trxmodel.TransactionLog{
			TransactionLogType:           trxmodel.TransactionTypeIncome,
			TransactionLogReferenceID:    fee.FeeCollectionID,
			TransactionLogReferenceModel: trxmodel.ReferenceModelFeeCollection,
			TransactionLogAmountIDR:      in.ReceivedAmount,
			TransactionLogDescription:    feeLogDescription("Pelunasan admission", &fee, student.StudentName),
			TransactionLogPerformedBy:    in.CollectorID,
			TransactionLogBranchID:       student.StudentBranchID,
		}
		if err := trxservice.Append(ctx, tx, &entry); err != nil {
			return internalErr(err, "gagal mencatat transaction log")
		}

		settled = &fee
		return nil
	})
	if err != nil {
		return nil, wrapUnknown(err, "pelunasan admission gagal")
	}
	return settled, nil
}
