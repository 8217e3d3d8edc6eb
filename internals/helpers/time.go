// file: internals/helpers/time.go
package helper

import (
	"fmt"
	"strings"
	"time"
)

// parseFlexibleTime menerima RFC3339 atau tanggal polos (YYYY-MM-DD).
func parseFlexibleTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q (pakai RFC3339 atau YYYY-MM-DD)", s)
}

// ParseDateRange memvalidasi pasangan query date_from/date_to.
// String kosong berarti batas tersebut tidak dipakai.
func ParseDateRange(fromStr, toStr string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if strings.TrimSpace(fromStr) != "" {
		t, err := parseFlexibleTime(fromStr)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if strings.TrimSpace(toStr) != "" {
		t, err := parseFlexibleTime(toStr)
		if err != nil {
			return nil, nil, err
		}
		// tanggal polos dianggap inklusif sampai akhir hari
		if len(strings.TrimSpace(toStr)) == 10 {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		to = &t
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("date_from melewati date_to")
	}
	return from, to, nil
}
