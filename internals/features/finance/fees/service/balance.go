// file: internals/features/finance/fees/service/balance.go
package service

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	feemodel "madrasaku_backend/internals/features/finance/fees/model"
	studentmodel "madrasaku_backend/internals/features/school/students/model"
)

// saveBalance meng-overwrite pasangan {due, advance} satu jenis biaya pada
// Balance Store siswa (selalu replace, tidak pernah increment) dan
// mem-persist seluruh kolom JSONB dalam transaksi caller.
func saveBalance(ctx context.Context, tx *gorm.DB, student *studentmodel.Student, t feemodel.FeeType, pair feemodel.FeeBalance) error {
	m := student.StudentFeeBalance.Data()
	if m == nil {
		m = feemodel.FeeBalanceMap{}
	}
	m[t] = pair
	student.StudentFeeBalance = datatypes.NewJSONType(m)

	return tx.WithContext(ctx).
		Model(&studentmodel.Student{}).
		Where("student_id = ?", student.StudentID).
		Updates(map[string]any{
			"student_fee_balance": student.StudentFeeBalance,
			"student_updated_at":  time.Now(),
		}).Error
}
