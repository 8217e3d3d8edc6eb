// file: internals/features/finance/fees/model/fee_collection_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL - fee_collections (satu billing event)
============================================== */

type FeeCollection struct {
	// PK
	FeeCollectionID uuid.UUID `gorm:"column:fee_collection_id;type:uuid;primaryKey" json:"fee_collection_id"`

	// Nomor kwitansi (unik, year-scoped, lihat service/receipt.go)
	FeeCollectionReceiptNo string `gorm:"column:fee_collection_receipt_no;type:varchar(24);not null;uniqueIndex:uniq_fee_receipt_no" json:"fee_collection_receipt_no"`

	// Subjek
	// Unik per (student, session, fee_type, month, year) utk jenis month-periodic.
	// Cek duplikat tetap dilakukan di service (di dalam transaksi); index parsial
	// ini backstop di level DB terhadap race check-then-insert.
	FeeCollectionStudentID uuid.UUID `gorm:"column:fee_collection_student_id;type:uuid;not null;index;uniqueIndex:uniq_fee_period,priority:1" json:"fee_collection_student_id"`
	FeeCollectionSessionID uuid.UUID `gorm:"column:fee_collection_session_id;type:uuid;not null;index;uniqueIndex:uniq_fee_period,priority:2" json:"fee_collection_session_id"`

	// Jenis + periode (month/year hanya untuk jenis month-periodic)
	FeeCollectionFeeType FeeType `gorm:"column:fee_collection_fee_type;type:varchar(20);not null;uniqueIndex:uniq_fee_period,priority:3" json:"fee_collection_fee_type"`
	FeeCollectionMonth   *int    `gorm:"column:fee_collection_month;type:smallint;uniqueIndex:uniq_fee_period,priority:4" json:"fee_collection_month,omitempty"`
	FeeCollectionYear    *int    `gorm:"column:fee_collection_year;type:smallint;uniqueIndex:uniq_fee_period,priority:5,where:fee_collection_is_deleted = false" json:"fee_collection_year,omitempty"`

	// Nominal (IDR)
	FeeCollectionBaseAmountIDR     int `gorm:"column:fee_collection_base_amount_idr;type:int;not null;check:fee_collection_base_amount_idr>=0" json:"fee_collection_base_amount_idr"`
	FeeCollectionPayableAmountIDR  int `gorm:"column:fee_collection_payable_amount_idr;type:int;not null" json:"fee_collection_payable_amount_idr"`
	FeeCollectionReceivedAmountIDR int `gorm:"column:fee_collection_received_amount_idr;type:int;not null;check:fee_collection_received_amount_idr>=0" json:"fee_collection_received_amount_idr"`
	FeeCollectionDueAmountIDR      int `gorm:"column:fee_collection_due_amount_idr;type:int;not null;default:0" json:"fee_collection_due_amount_idr"`
	FeeCollectionAdvanceAmountIDR  int `gorm:"column:fee_collection_advance_amount_idr;type:int;not null;default:0" json:"fee_collection_advance_amount_idr"`

	// Status & metode
	FeeCollectionPaymentStatus PaymentStatus `gorm:"column:fee_collection_payment_status;type:varchar(10);not null;index" json:"fee_collection_payment_status"`
	FeeCollectionPaymentMethod PaymentMethod `gorm:"column:fee_collection_payment_method;type:varchar(10);not null;default:'cash'" json:"fee_collection_payment_method"`

	// Identitas & cabang
	FeeCollectionCollectorID uuid.UUID  `gorm:"column:fee_collection_collector_id;type:uuid;not null;index" json:"fee_collection_collector_id"`
	FeeCollectionBranchID    *uuid.UUID `gorm:"column:fee_collection_branch_id;type:uuid;index" json:"fee_collection_branch_id,omitempty"`

	// Catatan koreksi (wajib saat month/year/nominal berubah)
	FeeCollectionRemarks *string `gorm:"column:fee_collection_remarks;type:text" json:"fee_collection_remarks,omitempty"`

	// Soft delete eksplisit - uang yang sudah bergerak tidak pernah dihapus fisik
	FeeCollectionIsDeleted bool       `gorm:"column:fee_collection_is_deleted;not null;default:false;index" json:"fee_collection_is_deleted"`
	FeeCollectionDeletedAt *time.Time `gorm:"column:fee_collection_deleted_at" json:"fee_collection_deleted_at,omitempty"`

	// Audit
	FeeCollectionCreatedAt time.Time `gorm:"column:fee_collection_created_at;not null" json:"fee_collection_created_at"`
	FeeCollectionUpdatedAt time.Time `gorm:"column:fee_collection_updated_at;not null" json:"fee_collection_updated_at"`
}

func (FeeCollection) TableName() string { return "fee_collections" }

func (m *FeeCollection) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()

	if m.FeeCollectionID == uuid.Nil {
		m.FeeCollectionID = uuid.New()
	}
	if m.FeeCollectionCreatedAt.IsZero() {
		m.FeeCollectionCreatedAt = now
	}
	m.FeeCollectionUpdatedAt = now
	return nil
}

func (m *FeeCollection) BeforeUpdate(tx *gorm.DB) error {
	m.FeeCollectionUpdatedAt = time.Now()
	return nil
}
