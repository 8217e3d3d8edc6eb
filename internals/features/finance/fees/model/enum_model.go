// file: internals/features/finance/fees/model/enum_model.go
package model

/* ==============================
   ENUM - jenis biaya
============================== */

type FeeType string

const (
	FeeTypeAdmission   FeeType = "admission"
	FeeTypeMonthly     FeeType = "monthly"
	FeeTypeResidential FeeType = "residential"
	FeeTypeCoaching    FeeType = "coaching"
	FeeTypeDaycare     FeeType = "daycare"
	FeeTypeUtility     FeeType = "utility"
	FeeTypeMeal        FeeType = "meal"
	FeeTypeOther       FeeType = "other"
)

func (t FeeType) Valid() bool {
	switch t {
	case FeeTypeAdmission, FeeTypeMonthly, FeeTypeResidential, FeeTypeCoaching,
		FeeTypeDaycare, FeeTypeUtility, FeeTypeMeal, FeeTypeOther:
		return true
	}
	return false
}

// IsMonthPeriodic: biaya dengan dimensi bulan/tahun + carry saldo.
// utility & other = ad-hoc (nominal bebas, tanpa carry).
func (t FeeType) IsMonthPeriodic() bool {
	switch t {
	case FeeTypeAdmission, FeeTypeMonthly, FeeTypeResidential, FeeTypeCoaching,
		FeeTypeDaycare, FeeTypeMeal:
		return true
	}
	return false
}

/* ==============================
   ENUM - status pembayaran
============================== */

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusDue     PaymentStatus = "due"
)

/* ==============================
   ENUM - metode pembayaran
============================== */

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodOther    PaymentMethod = "other"
)

/* ==============================
   Balance Store - pasangan due/advance per jenis biaya
============================== */

// FeeBalance: maksimal salah satu dari due/advance yang non-zero.
type FeeBalance struct {
	Due     int `json:"due"`
	Advance int `json:"advance"`
}

type FeeBalanceMap map[FeeType]FeeBalance

// Get mengembalikan pasangan saldo (default 0/0 kalau belum ada).
func (m FeeBalanceMap) Get(t FeeType) FeeBalance {
	if m == nil {
		return FeeBalance{}
	}
	return m[t]
}
