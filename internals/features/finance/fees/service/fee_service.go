// file: internals/features/finance/fees/service/fee_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "madrasaku_backend/internals/features/finance/fees/model"
	trxmodel "madrasaku_backend/internals/features/finance/transactions/model"
	trxservice "madrasaku_backend/internals/features/finance/transactions/service"
	sessionmodel "madrasaku_backend/internals/features/school/sessions/model"
	studentmodel "madrasaku_backend/internals/features/school/students/model"
)

/* ==============================================
   Fee Ledger Engine

   Register / Update (koreksi) / SoftDelete /
   ReverseAndDelete. Tulis fee record + overwrite
   Balance Store + append Transaction Log dibungkus
   SATU db.Transaction (all-or-nothing).
============================================== */

type RegisterFeeInput struct {
	StudentID      uuid.UUID
	FeeType        model.FeeType
	ReceivedAmount int
	Month          *int
	Year           *int
	// Nominal wajib dari caller khusus jenis ad-hoc (utility/other)
	PayableOverride *int
	PaymentMethod   model.PaymentMethod
	CollectorID     uuid.UUID
	Remarks         *string
}

type UpdateFeePatch struct {
	Month          *int
	Year           *int
	BaseAmount     *int
	PayableAmount  *int
	ReceivedAmount *int
	PaymentMethod  *model.PaymentMethod
	Remarks        *string
}

// Register mencatat satu billing event baru utk siswa.
func Register(ctx context.Context, db *gorm.DB, in RegisterFeeInput) (*model.FeeCollection, error) {
	if !in.FeeType.Valid() {
		return nil, validationErr("jenis biaya tidak dikenal", map[string]string{"fee_type": string(in.FeeType)})
	}
	// admission TIDAK lewat sini - pelunasannya additive (lihat PayAdmissionDue)
	if in.FeeType == model.FeeTypeAdmission {
		return nil, validationErr("biaya admission dilunasi lewat pay-admission, bukan register", nil)
	}
	if in.ReceivedAmount < 0 {
		return nil, validationErr("received_amount tidak boleh negatif", map[string]string{"received_amount": "min=0"})
	}

	periodic := in.FeeType.IsMonthPeriodic()
	if periodic {
		if in.Month == nil || in.Year == nil {
			return nil, validationErr("month & year wajib utk biaya bulanan", map[string]string{"month": "required", "year": "required"})
		}
		if *in.Month < 1 || *in.Month > 12 {
			return nil, validationErr("month di luar rentang 1-12", map[string]string{"month": "range"})
		}
	}

	var created *model.FeeCollection
	err := db.Transaction(func(tx *gorm.DB) error {
		student, session, err := loadStudentWithActiveSession(ctx, tx, in.StudentID)
		if err != nil {
			return err
		}

		// cek duplikat periode (non-deleted) - di dalam transaksi yang sama
		// dengan insert; unique index parsial jadi backstop utk race.
		if periodic {
			var cnt int64
			if err := tx.WithContext(ctx).
				Model(&model.FeeCollection{}).
				Where(`fee_collection_student_id = ?
					AND fee_collection_session_id = ?
					AND fee_collection_fee_type = ?
					AND fee_collection_month = ?
					AND fee_collection_year = ?
					AND fee_collection_is_deleted = ?`,
					student.StudentID, session.AcademicSessionID, in.FeeType, *in.Month, *in.Year, false).
				Count(&cnt).Error; err != nil {
				return internalErr(err, "gagal cek duplikasi periode")
			}
			if cnt > 0 {
				return conflictErr("tagihan %s periode %02d/%d sudah tercatat", in.FeeType, *in.Month, *in.Year)
			}
		}

		// resolusi base amount
		var base int
		if periodic {
			cfg := student.ConfiguredFee(in.FeeType)
			if cfg == nil {
				return validationErr(
					fmt.Sprintf("nominal %s belum dikonfigurasi pada siswa", in.FeeType),
					map[string]string{"fee_type": "not_configured"})
			}
			base = *cfg
		} else {
			if in.PayableOverride == nil || *in.PayableOverride <= 0 {
				return validationErr("payable_amount wajib positif utk biaya ad-hoc", map[string]string{"payable_amount": "required,gt=0"})
			}
			base = *in.PayableOverride
		}

		// carry saldo lama - hanya jenis month-periodic
		prev := model.FeeBalance{}
		if periodic {
			prev = student.BalanceFor(in.FeeType)
		}
		rec := Reconcile(base, prev.Due, prev.Advance, in.ReceivedAmount)

		receiptNo, err := NextReceiptNumber(ctx, tx, ReceiptKindFee, time.Now().Year())
		if err != nil {
			return internalErr(err, "gagal generate nomor kwitansi")
		}

		fee := model.FeeCollection{
			FeeCollectionReceiptNo:         receiptNo,
			FeeCollectionStudentID:         student.StudentID,
			FeeCollectionSessionID:         session.AcademicSessionID,
			FeeCollectionFeeType:           in.FeeType,
			FeeCollectionMonth:             in.Month,
			FeeCollectionYear:              in.Year,
			FeeCollectionBaseAmountIDR:     base,
			FeeCollectionPayableAmountIDR:  rec.PayableAmount,
			FeeCollectionReceivedAmountIDR: in.ReceivedAmount,
			FeeCollectionDueAmountIDR:      rec.DueAmount,
			FeeCollectionAdvanceAmountIDR:  rec.AdvanceAmount,
			FeeCollectionPaymentStatus:     rec.Status,
			FeeCollectionPaymentMethod:     paymentMethodOrDefault(in.PaymentMethod),
			FeeCollectionCollectorID:       in.CollectorID,
			FeeCollectionBranchID:          student.StudentBranchID,
			FeeCollectionRemarks:           in.Remarks,
		}
		if !periodic {
			fee.FeeCollectionMonth = nil
			fee.FeeCollectionYear = nil
		}
		if err := tx.WithContext(ctx).Create(&fee).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflictErr("nomor kwitansi / periode bentrok dengan pencatatan paralel, silakan ulangi")
			}
			return internalErr(err, "gagal menyimpan fee record")
		}

		// overwrite Balance Store - record ini jadi satu-satunya sumber
		// kebenaran saldo jenis tsb ke depan
		if periodic {
			if err := saveBalance(ctx, tx, student, in.FeeType, model.FeeBalance{Due: rec.DueAmount, Advance: rec.AdvanceAmount}); err != nil {
				return internalErr(err, "gagal update balance store")
			}
		}

		if in.ReceivedAmount > 0 {
			entry := trxmodel.TransactionLog{
				TransactionLogType:           trxmodel.TransactionTypeIncome,
				TransactionLogReferenceID:    fee.FeeCollectionID,
				TransactionLogReferenceModel: trxmodel.ReferenceModelFeeCollection,
				TransactionLogAmountIDR:      in.ReceivedAmount,
				TransactionLogDescription:    feeLogDescription("Penerimaan", &fee, student.StudentName),
				TransactionLogPerformedBy:    in.CollectorID,
				TransactionLogBranchID:       student.StudentBranchID,
			}
			if err := trxservice.Append(ctx, tx, &entry); err != nil {
				return internalErr(err, "gagal mencatat transaction log")
			}
		}

		created = &fee
		return nil
	})
	if err != nil {
		return nil, wrapUnknown(err, "register fee gagal")
	}
	return created, nil
}

// Update = jalur koreksi. Status/due/advance dihitung ulang dari
// received vs payable record SAAT INI, baru patch diterapkan
// (recompute-then-assign; patch received baru terlihat di status pada
// koreksi berikutnya).
func Update(ctx context.Context, db *gorm.DB, feeID uuid.UUID, patch UpdateFeePatch, performedBy uuid.UUID) (*model.FeeCollection, error) {
	var updated *model.FeeCollection
	err := db.Transaction(func(tx *gorm.DB) error {
		var fee model.FeeCollection
		if err := tx.WithContext(ctx).
			First(&fee, "fee_collection_id = ? AND fee_collection_is_deleted = ?", feeID, false).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("fee record tidak ditemukan")
			}
			return internalErr(err, "gagal mengambil fee record")
		}

		// remarks wajib saat periode / nominal berubah
		changed := patch.Month != nil || patch.Year != nil ||
			patch.BaseAmount != nil || patch.PayableAmount != nil || patch.ReceivedAmount != nil
		if changed && (patch.Remarks == nil || strings.TrimSpace(*patch.Remarks) == "") {
			return validationErr("remarks wajib diisi saat mengubah periode atau nominal", map[string]string{"remarks": "required"})
		}

		// cek duplikat utk periode baru (exclude record ini)
		if fee.FeeCollectionFeeType.IsMonthPeriodic() && (patch.Month != nil || patch.Year != nil) {
			newMonth := valueOr(patch.Month, fee.FeeCollectionMonth)
			newYear := valueOr(patch.Year, fee.FeeCollectionYear)
			if newMonth == nil || newYear == nil {
				return validationErr("month & year wajib utk biaya bulanan", map[string]string{"month": "required", "year": "required"})
			}
			if *newMonth < 1 || *newMonth > 12 {
				return validationErr("month di luar rentang 1-12", map[string]string{"month": "range"})
			}
			var cnt int64
			if err := tx.WithContext(ctx).
				Model(&model.FeeCollection{}).
				Where(`fee_collection_student_id = ?
					AND fee_collection_session_id = ?
					AND fee_collection_fee_type = ?
					AND fee_collection_month = ?
					AND fee_collection_year = ?
					AND fee_collection_is_deleted = ?
					AND fee_collection_id <> ?`,
					fee.FeeCollectionStudentID, fee.FeeCollectionSessionID, fee.FeeCollectionFeeType,
					*newMonth, *newYear, false, fee.FeeCollectionID).
				Count(&cnt).Error; err != nil {
				return internalErr(err, "gagal cek duplikasi periode")
			}
			if cnt > 0 {
				return conflictErr("tagihan %s periode %02d/%d sudah tercatat", fee.FeeCollectionFeeType, *newMonth, *newYear)
			}
		}

		// 1) recompute dari nilai record saat ini (PRA-patch)
		cls := Classify(fee.FeeCollectionReceivedAmountIDR, fee.FeeCollectionPayableAmountIDR)
		fee.FeeCollectionDueAmountIDR = cls.DueAmount
		fee.FeeCollectionAdvanceAmountIDR = cls.AdvanceAmount
		fee.FeeCollectionPaymentStatus = cls.Status

		// 2) apply patch
		oldReceived := fee.FeeCollectionReceivedAmountIDR
		if patch.Month != nil {
			fee.FeeCollectionMonth = patch.Month
		}
		if patch.Year != nil {
			fee.FeeCollectionYear = patch.Year
		}
		if patch.BaseAmount != nil {
			fee.FeeCollectionBaseAmountIDR = *patch.BaseAmount
		}
		if patch.PayableAmount != nil {
			fee.FeeCollectionPayableAmountIDR = *patch.PayableAmount
		}
		if patch.ReceivedAmount != nil {
			if *patch.ReceivedAmount < 0 {
				return validationErr("received_amount tidak boleh negatif", map[string]string{"received_amount": "min=0"})
			}
			fee.FeeCollectionReceivedAmountIDR = *patch.ReceivedAmount
		}
		if patch.PaymentMethod != nil {
			fee.FeeCollectionPaymentMethod = *patch.PaymentMethod
		}
		if patch.Remarks != nil {
			fee.FeeCollectionRemarks = patch.Remarks
		}

		if err := tx.WithContext(ctx).Save(&fee).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflictErr("periode bentrok dengan pencatatan paralel")
			}
			return internalErr(err, "gagal menyimpan koreksi")
		}

		// 3) push saldo hasil recompute ke Balance Store (sama spt register)
		if fee.FeeCollectionFeeType.IsMonthPeriodic() {
			var student studentmodel.Student
			if err := tx.WithContext(ctx).First(&student, "student_id = ?", fee.FeeCollectionStudentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFoundErr("siswa tidak ditemukan")
				}
				return internalErr(err, "gagal mengambil siswa")
			}
			if err := saveBalance(ctx, tx, &student, fee.FeeCollectionFeeType,
				model.FeeBalance{Due: cls.DueAmount, Advance: cls.AdvanceAmount}); err != nil {
				return internalErr(err, "gagal update balance store")
			}
		}

		// 4) log selisih received (income naik / adjustment turun)
		diff := fee.FeeCollectionReceivedAmountIDR - oldReceived
		if diff != 0 {
			logType := trxmodel.TransactionTypeIncome
			amount := diff
			label := "Koreksi (tambah)"
			if diff < 0 {
				logType = trxmodel.TransactionTypeAdjustment
				amount = -diff
				label = "Koreksi (kurang)"
			}
			entry := trxmodel.TransactionLog{
				TransactionLogType:           logType,
				TransactionLogReferenceID:    fee.FeeCollectionID,
				TransactionLogReferenceModel: trxmodel.ReferenceModelFeeCollection,
				TransactionLogAmountIDR:      amount,
				TransactionLogDescription:    feeLogDescription(label, &fee, ""),
				TransactionLogPerformedBy:    performedBy,
				TransactionLogBranchID:       fee.FeeCollectionBranchID,
			}
			if err := trxservice.Append(ctx, tx, &entry); err != nil {
				return internalErr(err, "gagal mencatat transaction log")
			}
		}

		updated = &fee
		return nil
	})
	if err != nil {
		return nil, wrapUnknown(err, "update fee gagal")
	}
	return updated, nil
}

// SoftDelete hanya menandai record - TIDAK membalik saldo dan TIDAK
// menulis log (perilaku warisan; varian terkoreksi: ReverseAndDelete).
func SoftDelete(ctx context.Context, db *gorm.DB, feeID uuid.UUID) (*model.FeeCollection, error) {
	var fee model.FeeCollection
	if err := db.WithContext(ctx).
		First(&fee, "fee_collection_id = ? AND fee_collection_is_deleted = ?", feeID, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("fee record tidak ditemukan")
		}
		return nil, internalErr(err, "gagal mengambil fee record")
	}

	now := time.Now()
	fee.FeeCollectionIsDeleted = true
	fee.FeeCollectionDeletedAt = &now
	if err := db.WithContext(ctx).Save(&fee).Error; err != nil {
		return nil, internalErr(err, "gagal soft delete")
	}
	return &fee, nil
}

// ReverseAndDelete: varian eksplisit yang MEMBALIK efek record sebelum
// soft delete - saldo jenis tsb dikembalikan ke pasangan pra-record
// (direkonstruksi dari payable - base) dan satu entry REVERSAL dicatat.
func ReverseAndDelete(ctx context.Context, db *gorm.DB, feeID uuid.UUID, performedBy uuid.UUID) (*model.FeeCollection, error) {
	var removed *model.FeeCollection
	err := db.Transaction(func(tx *gorm.DB) error {
		var fee model.FeeCollection
		if err := tx.WithContext(ctx).
			First(&fee, "fee_collection_id = ? AND fee_collection_is_deleted = ?", feeID, false).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("fee record tidak ditemukan")
			}
			return internalErr(err, "gagal mengambil fee record")
		}

		if fee.FeeCollectionFeeType.IsMonthPeriodic() {
			var student studentmodel.Student
			if err := tx.WithContext(ctx).First(&student, "student_id = ?", fee.FeeCollectionStudentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFoundErr("siswa tidak ditemukan")
				}
				return internalErr(err, "gagal mengambil siswa")
			}
			// payable = base + prevDue - prevAdvance -> net lama = payable - base
			prevNet := fee.FeeCollectionPayableAmountIDR - fee.FeeCollectionBaseAmountIDR
			prev := model.FeeBalance{}
			if prevNet > 0 {
				prev.Due = prevNet
			} else if prevNet < 0 {
				prev.Advance = -prevNet
			}
			if err := saveBalance(ctx, tx, &student, fee.FeeCollectionFeeType, prev); err != nil {
				return internalErr(err, "gagal mengembalikan balance store")
			}
		}

		if fee.FeeCollectionReceivedAmountIDR > 0 {
			entry := trxmodel.TransactionLog{
				TransactionLogType:           trxmodel.TransactionTypeReversal,
				TransactionLogReferenceID:    fee.FeeCollectionID,
				TransactionLogReferenceModel: trxmodel.ReferenceModelFeeCollection,
				TransactionLogAmountIDR:      fee.FeeCollectionReceivedAmountIDR,
				TransactionLogDescription:    feeLogDescription("Pembatalan", &fee, ""),
				TransactionLogPerformedBy:    performedBy,
				TransactionLogBranchID:       fee.FeeCollectionBranchID,
			}
			if err := trxservice.Append(ctx, tx, &entry); err != nil {
				return internalErr(err, "gagal mencatat transaction log")
			}
		}

		now := time.Now()
		fee.FeeCollectionIsDeleted = true
		fee.FeeCollectionDeletedAt = &now
		if err := tx.WithContext(ctx).Save(&fee).Error; err != nil {
			return internalErr(err, "gagal soft delete")
		}

		removed = &fee
		return nil
	})
	if err != nil {
		return nil, wrapUnknown(err, "reverse & delete gagal")
	}
	return removed, nil
}

/* ======================================
   Helpers internal
====================================== */

func loadStudentWithActiveSession(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) (*studentmodel.Student, *sessionmodel.AcademicSession, error) {
	var student studentmodel.Student
	if err := tx.WithContext(ctx).First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, notFoundErr("siswa tidak ditemukan")
		}
		return nil, nil, internalErr(err, "gagal mengambil siswa")
	}

	var session sessionmodel.AcademicSession
	if err := tx.WithContext(ctx).First(&session, "academic_session_id = ?", student.StudentSessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, notFoundErr("sesi akademik siswa tidak ditemukan")
		}
		return nil, nil, internalErr(err, "gagal mengambil sesi akademik")
	}
	if !session.AcademicSessionIsActive {
		return nil, nil, conflictErr("sesi akademik %s tidak aktif", session.AcademicSessionName)
	}

	return &student, &session, nil
}

func paymentMethodOrDefault(m model.PaymentMethod) model.PaymentMethod {
	if m == "" {
		return model.PaymentMethodCash
	}
	return m
}

func valueOr(patch, current *int) *int {
	if patch != nil {
		return patch
	}
	return current
}

func feeLogDescription(label string, fee *model.FeeCollection, studentName string) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(" ")
	b.WriteString(string(fee.FeeCollectionFeeType))
	if fee.FeeCollectionMonth != nil && fee.FeeCollectionYear != nil {
		fmt.Fprintf(&b, " %02d/%d", *fee.FeeCollectionMonth, *fee.FeeCollectionYear)
	}
	if studentName != "" {
		b.WriteString(" - ")
		b.WriteString(studentName)
	}
	fmt.Fprintf(&b, " (%s)", fee.FeeCollectionReceiptNo)
	return b.String()
}
