// file: internals/features/finance/fees/service/receipt.go
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

/* ==============================================
   Nomor kwitansi: <PREFIX>-<YYYY>-<NNNNNN>
   (unik & berurutan per tahun per jenis record)

   Pola read-max-then-increment mengikuti perilaku
   yang ada; race antar call paralel ditahan oleh
   unique index pada kolom nomor (insert kedua gagal
   duplicated-key, bukan nomor ganda). Alternatif yang
   lebih keras: counter document ber-atomic increment.
============================================== */

type ReceiptKind string

const (
	ReceiptKindFee     ReceiptKind = "FEE"
	ReceiptKindExpense ReceiptKind = "EXP"
)

const receiptSeqWidth = 6

var receiptSources = map[ReceiptKind]struct {
	table  string
	column string
}{
	ReceiptKindFee:     {table: "fee_collections", column: "fee_collection_receipt_no"},
	ReceiptKindExpense: {table: "expenses", column: "expense_receipt_no"},
}

// NextReceiptNumber membaca nomor terbesar utk prefix tahun berjalan dan +1.
// Jalan di atas transaksi caller supaya satu nomor = satu insert.
func NextReceiptNumber(ctx context.Context, tx *gorm.DB, kind ReceiptKind, year int) (string, error) {
	src, ok := receiptSources[kind]
	if !ok {
		return "", fmt.Errorf("receipt kind tidak dikenal: %s", kind)
	}

	prefix := fmt.Sprintf("%s-%04d-", kind, year)

	var last string
	err := tx.WithContext(ctx).
		Table(src.table).
		Select(src.column).
		Where(src.column+" LIKE ?", prefix+"%").
		Order(src.column + " DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", err
	}

	next := 1
	if last != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
		if err != nil {
			return "", fmt.Errorf("nomor kwitansi tidak valid di DB: %q", last)
		}
		next = n + 1
	}

	return fmt.Sprintf("%s%0*d", prefix, receiptSeqWidth, next), nil
}
