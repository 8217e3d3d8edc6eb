// file: internals/features/finance/fees/service/fee_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	expensemodel "madrasaku_backend/internals/features/finance/expenses/model"
	model "madrasaku_backend/internals/features/finance/fees/model"
	trxmodel "madrasaku_backend/internals/features/finance/transactions/model"
	sessionmodel "madrasaku_backend/internals/features/school/sessions/model"
	studentmodel "madrasaku_backend/internals/features/school/students/model"
)

/* ==============================================
   Harness: sqlite in-memory + seed minimal
============================================== */

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&sessionmodel.AcademicSession{},
		&studentmodel.Student{},
		&model.FeeCollection{},
		&trxmodel.TransactionLog{},
		&expensemodel.Expense{},
	))
	return db
}

func seedSession(t *testing.T, db *gorm.DB, active bool) *sessionmodel.AcademicSession {
	t.Helper()
	s := sessionmodel.AcademicSession{
		AcademicSessionName:      "2025/2026",
		AcademicSessionStartYear: 2025,
		AcademicSessionEndYear:   2026,
		AcademicSessionIsActive:  active,
	}
	require.NoError(t, db.Create(&s).Error)
	return &s
}

// seedStudent: monthly & admission terkonfigurasi, meal sengaja nil.
func seedStudent(t *testing.T, db *gorm.DB, sessionID uuid.UUID) *studentmodel.Student {
	t.Helper()
	monthly := 500_000
	admission := 1_000_000
	s := studentmodel.Student{
		StudentName:            "Ahmad Fauzi",
		StudentCode:            "STU-001",
		StudentSessionID:       sessionID,
		StudentMonthlyFeeIDR:   &monthly,
		StudentAdmissionFeeIDR: &admission,
	}
	require.NoError(t, db.Create(&s).Error)
	return &s
}

func reloadStudent(t *testing.T, db *gorm.DB, id uuid.UUID) *studentmodel.Student {
	t.Helper()
	var s studentmodel.Student
	require.NoError(t, db.First(&s, "student_id = ?", id).Error)
	return &s
}

func feeLogs(t *testing.T, db *gorm.DB, refID uuid.UUID) []trxmodel.TransactionLog {
	t.Helper()
	var logs []trxmodel.TransactionLog
	require.NoError(t, db.
		Where("transaction_log_reference_id = ?", refID).
		Order("transaction_log_created_at ASC").
		Find(&logs).Error)
	return logs
}

func intPtr(v int) *int { return &v }

func monthlyInput(studentID uuid.UUID, month, year, received int) RegisterFeeInput {
	return RegisterFeeInput{
		StudentID:      studentID,
		FeeType:        model.FeeTypeMonthly,
		ReceivedAmount: received,
		Month:          intPtr(month),
		Year:           intPtr(year),
		CollectorID:    uuid.New(),
	}
}

/* ==============================================
   Register
============================================== */

func TestRegisterMonthlyPartial(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)

	fee, err := Register(context.Background(), db, monthlyInput(student.StudentID, 1, 2026, 200_000))
	require.NoError(t, err)

	assert.Equal(t, model.PaymentStatusPartial, fee.FeeCollectionPaymentStatus)
	assert.Equal(t, 500_000, fee.FeeCollectionBaseAmountIDR)
	assert.Equal(t, 500_000, fee.FeeCollectionPayableAmountIDR)
	assert.Equal(t, 300_000, fee.FeeCollectionDueAmountIDR)
	assert.Equal(t, 0, fee.FeeCollectionAdvanceAmountIDR)
	assert.Equal(t, model.PaymentMethodCash, fee.FeeCollectionPaymentMethod)
	assert.Regexp(t, `^FEE-\d{4}-\d{6}$`, fee.FeeCollectionReceiptNo)

	// Balance Store di-overwrite ke hasil rekonsiliasi
	bal := reloadStudent(t, db, student.StudentID).BalanceFor(model.FeeTypeMonthly)
	assert.Equal(t, model.FeeBalance{Due: 300_000}, bal)

	// satu entry INCOME sebesar received
	logs := feeLogs(t, db, fee.FeeCollectionID)
	require.Len(t, logs, 1)
	assert.Equal(t, trxmodel.TransactionTypeIncome, logs[0].TransactionLogType)
	assert.Equal(t, 200_000, logs[0].TransactionLogAmountIDR)
	assert.Equal(t, trxmodel.ReferenceModelFeeCollection, logs[0].TransactionLogReferenceModel)
}

// Tunggakan bulan lalu dilipat ke payable bulan berikutnya.
func TestRegisterCarriesDueForward(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)

	_, err := Register(context.Background(), db, monthlyInput(student.StudentID, 1, 2026, 200_000))
	require.NoError(t, err)

	fee2, err := Register(context.Background(), db, monthlyInput(student.StudentID, 2, 2026, 800_000))
	require.NoError(t, err)

	assert.Equal(t, 800_000, fee2.FeeCollectionPayableAmountIDR) // 500rb + carry 300rb
	assert.Equal(t, model.PaymentStatusPaid, fee2.FeeCollectionPaymentStatus)
	assert.Equal(t, 0, fee2.FeeCollectionDueAmountIDR)
	assert.Equal(t, 0, fee2.FeeCollectionAdvanceAmountIDR)

	bal := reloadStudent(t, db, student.StudentID).BalanceFor(model.FeeTypeMonthly)
	assert.Equal(t, model.FeeBalance{}, bal)
}

// Kelebihan bayar jadi advance dan mengurangi payable bulan berikutnya.
func TestRegisterCarriesAdvanceForward(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)

	fee1, err := Register(context.Background(), db, monthlyInput(student.StudentID, 1, 2026, 700_000))
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, fee1.FeeCollectionPaymentStatus)
	assert.Equal(t, 200_000, fee1.FeeCollectionAdvanceAmountIDR)

	fee2, err := Register(context.Background(), db, monthlyInput(student.StudentID, 2, 2026, 0))
	require.NoError(t, err)
	assert.Equal(t, 300_000, fee2.FeeCollectionPayableAmountIDR) // 500rb - advance 200rb
	assert.Equal(t, model.PaymentStatusDue, fee2.FeeCollectionPaymentStatus)
	assert.Equal(t, 300_000, fee2.FeeCollectionDueAmountIDR)

	// received = 0 berarti tidak ada uang bergerak: tanpa log
	assert.Empty(t, feeLogs(t, db, fee2.FeeCollectionID))
}

func TestRegisterDuplicatePeriodConflict(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)

	_, err := Register(context.Background(), db, monthlyInput(student.StudentID, 1, 2026, 500_000))
	require.NoError(t, err)

	_, err = Register(context.Background(), db, monthlyInput(student.StudentID, 1, 2026, 100_000))
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindConflict, e.Kind)
}

func TestRegisterRejectsAdmission(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)

	_, err := Register(context.Background(), db, RegisterFeeInput{
		StudentID:      student.StudentID,
		FeeType:        model.FeeTypeAdmission,
		ReceivedAmount: 100_000,
		Month:          intPtr(1),
		Year:           intPtr(2026),
		CollectorID:    uuid.New(),
	})
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, e.Kind)
}

func TestRegisterAdHocFee(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)

	// tanpa payable override
	_, err := Register(context.Background(), db, RegisterFeeInput{
		StudentID:      student.StudentID,
		FeeType:        model.FeeTypeUtility,
		ReceivedAmount: 150_000,
		CollectorID:    uuid.New(),
	})
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, e.Kind)

	// dengan override: tanpa month/year, tanpa sentuh Balance Store
	fee, err := Register(context.Background(), db, RegisterFeeInput{
		StudentID:       student.StudentID,
		FeeType:         model.FeeTypeUtility,
		ReceivedAmount:  150_000,
		PayableOverride: intPtr(150_000),
		CollectorID:     uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, fee.FeeCollectionPaymentStatus)
	assert.Nil(t, fee.FeeCollectionMonth)
	assert.Nil(t, fee.FeeCollectionYear)

	bal := reloadStudent(t, db, student.StudentID).StudentFeeBalance.Data()
	assert.NotContains(t, bal, model.FeeTypeUtility)
}

func TestRegisterValidationFailures(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)

	tests := []struct {
		name     string
		in       RegisterFeeInput
		wantKind ErrorKind
	}{
		{
			"jenis tidak dikenal",
			RegisterFeeInput{StudentID: student.StudentID, FeeType: "uang_kaget", CollectorID: uuid.New()},
			KindValidation,
		},
		{
			"received negatif",
			RegisterFeeInput{StudentID: student.StudentID, FeeType: model.FeeTypeMonthly, ReceivedAmount: -1,
				Month: intPtr(1), Year: intPtr(2026), CollectorID: uuid.New()},
			KindValidation,
		},
		{
			"month/year hilang",
			RegisterFeeInput{StudentID: student.StudentID, FeeType: model.FeeTypeMonthly, CollectorID: uuid.New()},
			KindValidation,
		},
		{
			"month di luar rentang",
			RegisterFeeInput{StudentID: student.StudentID, FeeType: model.FeeTypeMonthly,
				Month: intPtr(13), Year: intPtr(2026), CollectorID: uuid.New()},
			KindValidation,
		},
		{
			"nominal belum dikonfigurasi",
			RegisterFeeInput{StudentID: student.StudentID, FeeType: model.FeeTypeMeal,
				Month: intPtr(1), Year: intPtr(2026), CollectorID: uuid.New()},
			KindValidation,
		},
		{
			"siswa tidak ada",
			RegisterFeeInput{StudentID: uuid.New(), FeeType: model.FeeTypeMonthly,
				Month: intPtr(1), Year: intPtr(2026), CollectorID: uuid.New()},
			KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Register(context.Background(), db, tt.in)
			e, ok := AsError(err)
			require.True(t, ok, "err = %v", err)
			assert.Equal(t, tt.wantKind, e.Kind)
		})
	}
}

func TestRegisterInactiveSessionConflict(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, false)
	student := seedStudent(t, db, sess.AcademicSessionID)

	_, err := Register(context.Background(), db, monthlyInput(student.StudentID, 1, 2026, 100_000))
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindConflict, e.Kind)
}

/* ==============================================
   Update (koreksi)
============================================== */

func TestUpdateRequiresRemarks(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)

	fee, err := Register(context.Background(), db, monthlyInput(student.StudentID, 1, 2026, 200_000))
	require.NoError(t, err)

	_, err = Update(context.Background(), db, fee.FeeCollectionID,
		UpdateFeePatch{ReceivedAmount: intPtr(500_000)}, uuid.New())
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, e.Kind)

	// record tidak berubah setelah validasi gagal
	var after model.FeeCollection
	require.NoError(t, db.First(&after, "fee_collection_id = ?", fee.FeeCollectionID).Error)
	assert.Equal(t, 200_000, after.FeeCollectionReceivedAmountIDR)
	assert.Equal(t, model.PaymentStatusPartial, after.FeeCollectionPaymentStatus)
}

// Jalur koreksi menghitung ulang status dari nilai PRA-patch, baru
// menimpa field. Patch received baru terlihat di status pada koreksi
// BERIKUTNYA, bukan koreksi ini.
func TestUpdateRecomputeThenAssign(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)

	fee, err := Register(context.Background(), db, monthlyInput(student.StudentID, 1, 2026, 200_000))
	require.NoError(t, err)

	remarks := "pelunasan susulan"
	updated, err := Update(context.Background(), db, fee.FeeCollectionID,
		UpdateFeePatch{ReceivedAmount: intPtr(500_000), Remarks: &remarks}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 500_000, updated.FeeCollectionReceivedAmountIDR)
	assert.Equal(t, model.PaymentStatusPartial, updated.FeeCollectionPaymentStatus) // dari 200rb vs 500rb
	assert.Equal(t, 300_000, updated.FeeCollectionDueAmountIDR)

	bal := reloadStudent(t, db, student.StudentID).BalanceFor(model.FeeTypeMonthly)
	assert.Equal(t, model.FeeBalance{Due: 300_000}, bal)

	// selisih received naik 300rb -> INCOME
	logs := feeLogs(t, db, fee.FeeCollectionID)
	require.Len(t, logs, 2)
	assert.Equal(t, trxmodel.TransactionTypeIncome, logs[1].TransactionLogType)
	assert.Equal(t, 300_000, logs[1].TransactionLogAmountIDR)

	// koreksi kedua tanpa patch nominal: recompute memakai 500rb vs 500rb -> PAID
	remarks2 := "normalisasi status"
	method := model.PaymentMethodTransfer
	updated2, err := Update(context.Background(), db, fee.FeeCollectionID,
		UpdateFeePatch{PaymentMethod: &method, Remarks: &remarks2}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, updated2.FeeCollectionPaymentStatus)
	assert.Equal(t, 0, updated2.FeeCollectionDueAmountIDR)
}

func TestUpdateDecreaseLogsAdjustment(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)

	fee, err := Register(context.Background(), db, monthlyInput(student.StudentID, 1, 2026, 200_000))
	require.NoError(t, err)

	remarks := "salah input nominal"
	_, err = Update(context.Background(), db, fee.FeeCollectionID,
		UpdateFeePatch{ReceivedAmount: intPtr(100_000), Remarks: &remarks}, uuid.New())
	require.NoError(t, err)

	logs := feeLogs(t, db, fee.FeeCollectionID)
	require.Len(t, logs, 2)
	assert.Equal(t, trxmodel.TransactionTypeAdjustment, logs[1].TransactionLogType)
	assert.Equal(t, 100_000, logs[1].TransactionLogAmountIDR) // selalu absolut
}

func TestUpdateDuplicatePeriodConflict(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)

	_, err := Register(context.Background(), db, monthlyInput(student.StudentID, 1, 2026, 500_000))
	require.NoError(t, err)
	fee2, err := Register(context.Background(), db, monthlyInput(student.StudentID, 2, 2026, 500_000))
	require.NoError(t, err)

	remarks := "pindah periode"
	_, err = Update(context.Background(), db, fee2.FeeCollectionID,
		UpdateFeePatch{Month: intPtr(1), Remarks: &remarks}, uuid.New())
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindConflict, e.Kind)
}

func TestUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := Update(context.Background(), db, uuid.New(), UpdateFeePatch{}, uuid.New())
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, e.Kind)
}

/* ==============================================
   Delete & reverse
============================================== */

// SoftDelete warisan: saldo & log dibiarkan apa adanya.
func TestSoftDeleteLeavesBalanceAndLog(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)

	fee, err := Register(context.Background(), db, monthlyInput(student.StudentID, 1, 2026, 200_000))
	require.NoError(t, err)

	deleted, err := SoftDelete(context.Background(), db, fee.FeeCollectionID)
	require.NoError(t, err)
	assert.True(t, deleted.FeeCollectionIsDeleted)
	require.NotNil(t, deleted.FeeCollectionDeletedAt)

	bal := reloadStudent(t, db, student.StudentID).BalanceFor(model.FeeTypeMonthly)
	assert.Equal(t, model.FeeBalance{Due: 300_000}, bal)
	assert.Len(t, feeLogs(t, db, fee.FeeCollectionID), 1)

	// idempoten: record yang sudah terhapus = not found
	_, err = SoftDelete(context.Background(), db, fee.FeeCollectionID)
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, e.Kind)

	// periode yang sama bisa dicatat ulang setelah delete
	_, err = Register(context.Background(), db, monthlyInput(student.StudentID, 1, 2026, 500_000))
	require.NoError(t, err)
}

func TestReverseAndDeleteRestoresBalance(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)

	// bulan 1 tanpa bayar -> due 500rb
	_, err := Register(context.Background(), db, monthlyInput(student.StudentID, 1, 2026, 0))
	require.NoError(t, err)

	// bulan 2 bayar sebagian: payable 1jt, bayar 200rb -> due 800rb
	fee2, err := Register(context.Background(), db, monthlyInput(student.StudentID, 2, 2026, 200_000))
	require.NoError(t, err)
	require.Equal(t, model.FeeBalance{Due: 800_000},
		reloadStudent(t, db, student.StudentID).BalanceFor(model.FeeTypeMonthly))

	removed, err := ReverseAndDelete(context.Background(), db, fee2.FeeCollectionID, uuid.New())
	require.NoError(t, err)
	assert.True(t, removed.FeeCollectionIsDeleted)

	// saldo kembali ke pasangan pra-record bulan 2 (due carry 500rb)
	bal := reloadStudent(t, db, student.StudentID).BalanceFor(model.FeeTypeMonthly)
	assert.Equal(t, model.FeeBalance{Due: 500_000}, bal)

	// satu REVERSAL sebesar received record yang dibatalkan
	logs := feeLogs(t, db, fee2.FeeCollectionID)
	require.Len(t, logs, 2)
	assert.Equal(t, trxmodel.TransactionTypeReversal, logs[1].TransactionLogType)
	assert.Equal(t, 200_000, logs[1].TransactionLogAmountIDR)
}

/* ==============================================
   Pelunasan admission (additive)
============================================== */

func seedAdmissionDue(t *testing.T, db *gorm.DB, student *studentmodel.Student, sess *sessionmodel.AcademicSession, amount int) *model.FeeCollection {
	t.Helper()
	fee := model.FeeCollection{
		FeeCollectionReceiptNo:        "FEE-2025-000001",
		FeeCollectionStudentID:        student.StudentID,
		FeeCollectionSessionID:        sess.AcademicSessionID,
		FeeCollectionFeeType:          model.FeeTypeAdmission,
		FeeCollectionBaseAmountIDR:    amount,
		FeeCollectionPayableAmountIDR: amount,
		FeeCollectionDueAmountIDR:     amount,
		FeeCollectionPaymentStatus:    model.PaymentStatusDue,
		FeeCollectionPaymentMethod:    model.PaymentMethodCash,
		FeeCollectionCollectorID:      uuid.New(),
	}
	require.NoError(t, db.Create(&fee).Error)

	m := model.FeeBalanceMap{model.FeeTypeAdmission: {Due: amount}}
	require.NoError(t, db.Model(&studentmodel.Student{}).
		Where("student_id = ?", student.StudentID).
		Update("student_fee_balance", datatypes.NewJSONType(m)).Error)
	return &fee
}

func TestPayAdmissionPartialThenSettled(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)
	fee := seedAdmissionDue(t, db, student, sess, 1_000_000)

	// cicilan pertama 400rb -> PARTIAL, sisa 600rb
	first, err := PayAdmissionDue(context.Background(), db, AdmissionPaymentInput{
		StudentID:      student.StudentID,
		ReceivedAmount: 400_000,
		CollectorID:    uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPartial, first.FeeCollectionPaymentStatus)
	assert.Equal(t, 400_000, first.FeeCollectionReceivedAmountIDR)
	assert.Equal(t, 600_000, first.FeeCollectionDueAmountIDR)
	assert.Equal(t, model.FeeBalance{Due: 600_000},
		reloadStudent(t, db, student.StudentID).BalanceFor(model.FeeTypeAdmission))

	// cicilan kedua 700rb: received menumpuk (bukan overwrite), lebihnya jadi advance
	second, err := PayAdmissionDue(context.Background(), db, AdmissionPaymentInput{
		StudentID:      student.StudentID,
		ReceivedAmount: 700_000,
		CollectorID:    uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, second.FeeCollectionPaymentStatus)
	assert.Equal(t, 1_100_000, second.FeeCollectionReceivedAmountIDR)
	assert.Equal(t, 0, second.FeeCollectionDueAmountIDR)
	assert.Equal(t, 100_000, second.FeeCollectionAdvanceAmountIDR)
	assert.Equal(t, model.FeeBalance{Advance: 100_000},
		reloadStudent(t, db, student.StudentID).BalanceFor(model.FeeTypeAdmission))

	// dua cicilan = dua INCOME
	logs := feeLogs(t, db, fee.FeeCollectionID)
	require.Len(t, logs, 2)
	assert.Equal(t, 400_000, logs[0].TransactionLogAmountIDR)
	assert.Equal(t, 700_000, logs[1].TransactionLogAmountIDR)

	// tunggakan sudah nol -> pembayaran berikutnya ditolak
	_, err = PayAdmissionDue(context.Background(), db, AdmissionPaymentInput{
		StudentID:      student.StudentID,
		ReceivedAmount: 50_000,
		CollectorID:    uuid.New(),
	})
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindConflict, e.Kind)
}

func TestPayAdmissionWithoutRecord(t *testing.T) {
	db := newTestDB(t)
	sess := seedSession(t, db, true)
	student := seedStudent(t, db, sess.AcademicSessionID)

	_, err := PayAdmissionDue(context.Background(), db, AdmissionPaymentInput{
		StudentID:      student.StudentID,
		ReceivedAmount: 100_000,
		CollectorID:    uuid.New(),
	})
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, e.Kind)
}

func TestPayAdmissionRejectsNonPositive(t *testing.T) {
	db := newTestDB(t)

	for _, amount := range []int{0, -100} {
		_, err := PayAdmissionDue(context.Background(), db, AdmissionPaymentInput{
			StudentID:      uuid.New(),
			ReceivedAmount: amount,
			CollectorID:    uuid.New(),
		})
		e, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, KindValidation, e.Kind)
	}
}
