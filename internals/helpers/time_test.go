// file: internals/helpers/time_test.go
package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	t.Run("kosong", func(t *testing.T) {
		from, to, err := ParseDateRange("", "")
		require.NoError(t, err)
		assert.Nil(t, from)
		assert.Nil(t, to)
	})

	t.Run("rfc3339", func(t *testing.T) {
		from, to, err := ParseDateRange("2026-01-01T00:00:00Z", "2026-01-31T23:59:59Z")
		require.NoError(t, err)
		require.NotNil(t, from)
		require.NotNil(t, to)
		assert.True(t, from.Before(*to))
	})

	t.Run("tanggal polos inklusif sampai akhir hari", func(t *testing.T) {
		_, to, err := ParseDateRange("", "2026-01-15")
		require.NoError(t, err)
		require.NotNil(t, to)
		assert.Equal(t, 23, to.Hour())
		assert.Equal(t, 15, to.Day())
	})

	t.Run("format salah", func(t *testing.T) {
		_, _, err := ParseDateRange("15/01/2026", "")
		assert.Error(t, err)
	})

	t.Run("from melewati to", func(t *testing.T) {
		_, _, err := ParseDateRange("2026-02-01", "2026-01-01")
		assert.Error(t, err)
	})

	t.Run("hanya from", func(t *testing.T) {
		from, to, err := ParseDateRange("2026-01-01", "")
		require.NoError(t, err)
		require.NotNil(t, from)
		assert.Nil(t, to)
		assert.Equal(t, time.January, from.Month())
	})
}
