// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	feemodel "madrasaku_backend/internals/features/finance/fees/model"
	model "madrasaku_backend/internals/features/school/students/model"
)

type StudentResponse struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	StudentCode string    `json:"student_code,omitempty"`

	StudentBranchID  *uuid.UUID `json:"student_branch_id,omitempty"`
	StudentSessionID uuid.UUID  `json:"student_session_id"`

	StudentAdmissionFeeIDR   *int `json:"student_admission_fee_idr,omitempty"`
	StudentMonthlyFeeIDR     *int `json:"student_monthly_fee_idr,omitempty"`
	StudentResidentialFeeIDR *int `json:"student_residential_fee_idr,omitempty"`
	StudentCoachingFeeIDR    *int `json:"student_coaching_fee_idr,omitempty"`
	StudentDaycareFeeIDR     *int `json:"student_daycare_fee_idr,omitempty"`
	StudentMealFeeIDR        *int `json:"student_meal_fee_idr,omitempty"`

	StudentCreatedAt time.Time `json:"student_created_at"`
	StudentUpdatedAt time.Time `json:"student_updated_at"`
}

func ToStudentResponse(m model.Student) StudentResponse {
	return StudentResponse{
		StudentID:                m.StudentID,
		StudentName:              m.StudentName,
		StudentCode:              m.StudentCode,
		StudentBranchID:          m.StudentBranchID,
		StudentSessionID:         m.StudentSessionID,
		StudentAdmissionFeeIDR:   m.StudentAdmissionFeeIDR,
		StudentMonthlyFeeIDR:     m.StudentMonthlyFeeIDR,
		StudentResidentialFeeIDR: m.StudentResidentialFeeIDR,
		StudentCoachingFeeIDR:    m.StudentCoachingFeeIDR,
		StudentDaycareFeeIDR:     m.StudentDaycareFeeIDR,
		StudentMealFeeIDR:        m.StudentMealFeeIDR,
		StudentCreatedAt:         m.StudentCreatedAt,
		StudentUpdatedAt:         m.StudentUpdatedAt,
	}
}

func ToStudentResponses(list []model.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToStudentResponse(m))
	}
	return out
}

/* ======================================
   Balance view (GET /students/:id/balance)
====================================== */

type FeeBalanceEntry struct {
	FeeType    feemodel.FeeType `json:"fee_type"`
	DueIDR     int              `json:"due_idr"`
	AdvanceIDR int              `json:"advance_idr"`
}

type StudentBalanceResponse struct {
	StudentID       uuid.UUID         `json:"student_id"`
	StudentName     string            `json:"student_name"`
	Balances        []FeeBalanceEntry `json:"balances"`
	TotalDueIDR     int               `json:"total_due_idr"`
	TotalAdvanceIDR int               `json:"total_advance_idr"`
}

// urutan tampil tetap supaya response stabil utk klien
var balanceDisplayOrder = []feemodel.FeeType{
	feemodel.FeeTypeAdmission,
	feemodel.FeeTypeMonthly,
	feemodel.FeeTypeResidential,
	feemodel.FeeTypeCoaching,
	feemodel.FeeTypeDaycare,
	feemodel.FeeTypeMeal,
}

func ToStudentBalanceResponse(m model.Student) StudentBalanceResponse {
	resp := StudentBalanceResponse{
		StudentID:   m.StudentID,
		StudentName: m.StudentName,
		Balances:    make([]FeeBalanceEntry, 0, len(balanceDisplayOrder)),
	}
	for _, t := range balanceDisplayOrder {
		b := m.BalanceFor(t)
		resp.Balances = append(resp.Balances, FeeBalanceEntry{
			FeeType:    t,
			DueIDR:     b.Due,
			AdvanceIDR: b.Advance,
		})
		resp.TotalDueIDR += b.Due
		resp.TotalAdvanceIDR += b.Advance
	}
	return resp
}
