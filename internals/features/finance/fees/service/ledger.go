// file: internals/features/finance/fees/service/ledger.go
package service

import (
	model "madrasaku_backend/internals/features/finance/fees/model"
)

/* ==============================================
   Inti rekonsiliasi - fungsi murni, tanpa DB.

   payable = base + prevDue - prevAdvance
   Klasifikasi tiga arah (total & saling eksklusif):
     received >= payable -> PAID    (advance = received - payable)
     received == 0      -> DUE     (due = payable)
     selainnya          -> PARTIAL (due = payable - received)

   payable negatif (advance lama > tagihan baru)
   jatuh ke cabang PAID karena received >= payable
   - tidak pernah menghasilkan due negatif.
============================================== */

type Reconciliation struct {
	PayableAmount int
	DueAmount     int
	AdvanceAmount int
	Status        model.PaymentStatus
}

// Classify menghitung due/advance/status dari (received, payable).
// Dipakai langsung oleh jalur koreksi (update).
func Classify(received, payable int) Reconciliation {
	r := Reconciliation{PayableAmount: payable}
	switch {
	case received >= payable:
		r.Status = model.PaymentStatusPaid
		r.AdvanceAmount = received - payable
	case received == 0:
		r.Status = model.PaymentStatusDue
		r.DueAmount = payable
	default:
		r.Status = model.PaymentStatusPartial
		r.DueAmount = payable - received
	}
	return r
}

// Reconcile melipat saldo lama ke payable lalu mengklasifikasi pembayaran.
func Reconcile(baseAmount, prevDue, prevAdvance, received int) Reconciliation {
	return Classify(received, baseAmount+prevDue-prevAdvance)
}
