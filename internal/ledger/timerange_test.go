package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func TestNewWindow_Today(t *testing.T) {
	w, err := NewWindow(RangeToday, testNow, time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.True(t, w.Contains(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 6, 14, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)))
}

func TestNewWindow_RelativeRangesHaveNoUpperBound(t *testing.T) {
	for _, kind := range []RangeKind{RangeWeek, RangeMonth, RangeYear} {
		w, err := NewWindow(kind, testNow, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.True(t, w.Contains(testNow.AddDate(0, 0, 1)), "kind %s", kind)
	}

	w, err := NewWindow(RangeWeek, testNow, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.True(t, w.Contains(testNow.AddDate(0, 0, -7)))
	assert.False(t, w.Contains(testNow.AddDate(0, 0, -8)))
}

func TestNewWindow_CustomInclusive(t *testing.T) {
	start := time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)

	w, err := NewWindow(RangeCustom, testNow, start, end)
	require.NoError(t, err)

	assert.True(t, w.Contains(time.Date(2025, 1, 10, 0, 30, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2025, 1, 20, 23, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC)))
}

func TestNewWindow_CustomMissingBoundsMatchesNothing(t *testing.T) {
	w, err := NewWindow(RangeCustom, testNow, time.Time{}, testNow)
	require.NoError(t, err)
	assert.False(t, w.Contains(testNow))
}

func TestNewWindow_AllMatchesEverything(t *testing.T) {
	w, err := NewWindow(RangeAll, testNow, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.True(t, w.Contains(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(testNow.AddDate(10, 0, 0)))
}

func TestNewWindow_UnknownKind(t *testing.T) {
	_, err := NewWindow("quarter", testNow, time.Time{}, time.Time{})
	assert.Error(t, err)
}
