// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	feemodel "madrasaku_backend/internals/features/finance/fees/model"
)

/* ==============================================
   MODEL - students

   student_fee_balance = Balance Store: pasangan
   {due, advance} per jenis biaya, didenormalisasi
   ke row student untuk pembacaan cepat. Hanya
   dimutasi oleh Fee Ledger Engine & pelunasan
   admission (fees/service).
============================================== */

type Student struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`

	StudentName string `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentCode string `gorm:"column:student_code;type:varchar(30);index" json:"student_code"`

	// Tenant & sesi aktif
	StudentBranchID  *uuid.UUID `gorm:"column:student_branch_id;type:uuid;index" json:"student_branch_id,omitempty"`
	StudentSessionID uuid.UUID  `gorm:"column:student_session_id;type:uuid;not null;index" json:"student_session_id"`

	// Nominal biaya terkonfigurasi per jenis (IDR, nullable = tidak dikenakan)
	StudentAdmissionFeeIDR   *int `gorm:"column:student_admission_fee_idr;type:int" json:"student_admission_fee_idr,omitempty"`
	StudentMonthlyFeeIDR     *int `gorm:"column:student_monthly_fee_idr;type:int" json:"student_monthly_fee_idr,omitempty"`
	StudentResidentialFeeIDR *int `gorm:"column:student_residential_fee_idr;type:int" json:"student_residential_fee_idr,omitempty"`
	StudentCoachingFeeIDR    *int `gorm:"column:student_coaching_fee_idr;type:int" json:"student_coaching_fee_idr,omitempty"`
	StudentDaycareFeeIDR     *int `gorm:"column:student_daycare_fee_idr;type:int" json:"student_daycare_fee_idr,omitempty"`
	StudentMealFeeIDR        *int `gorm:"column:student_meal_fee_idr;type:int" json:"student_meal_fee_idr,omitempty"`

	// Balance Store (JSONB): map jenis biaya -> {due, advance}
	StudentFeeBalance datatypes.JSONType[feemodel.FeeBalanceMap] `gorm:"column:student_fee_balance;type:jsonb" json:"student_fee_balance"`

	// Audit
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (Student) TableName() string { return "students" }

func (m *Student) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) error {
	m.StudentUpdatedAt = time.Now()
	return nil
}

/* ======================================
   Lookup nominal terkonfigurasi per enum
   (pengganti akses field via string key)
====================================== */

// ConfiguredFee mengembalikan nominal terkonfigurasi untuk jenis month-periodic.
// nil = tidak dikonfigurasi; ad-hoc (utility/other) memang tidak punya konfigurasi.
func (m *Student) ConfiguredFee(t feemodel.FeeType) *int {
	switch t {
	case feemodel.FeeTypeAdmission:
		return m.StudentAdmissionFeeIDR
	case feemodel.FeeTypeMonthly:
		return m.StudentMonthlyFeeIDR
	case feemodel.FeeTypeResidential:
		return m.StudentResidentialFeeIDR
	case feemodel.FeeTypeCoaching:
		return m.StudentCoachingFeeIDR
	case feemodel.FeeTypeDaycare:
		return m.StudentDaycareFeeIDR
	case feemodel.FeeTypeMeal:
		return m.StudentMealFeeIDR
	default:
		return nil
	}
}

// BalanceFor membaca pasangan saldo dari Balance Store (default 0/0).
func (m *Student) BalanceFor(t feemodel.FeeType) feemodel.FeeBalance {
	return m.StudentFeeBalance.Data().Get(t)
}
