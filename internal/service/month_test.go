package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthWindow_CoversWholeMonth(t *testing.T) {
	start, end := MonthWindow(2025, 5)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
	// The window ends at the last instant of June 30, not July 1.
	assert.Equal(t, time.Date(2025, 6, 30, 23, 59, 59, 999999999, time.UTC), end)
}

func TestMonthWindow_December(t *testing.T) {
	start, end := MonthWindow(2025, 11)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 2025, end.Year())
	assert.Equal(t, time.December, end.Month())
	assert.Equal(t, 31, end.Day())
}

func TestMonthWindow_LeapFebruary(t *testing.T) {
	_, end := MonthWindow(2024, 1)
	assert.Equal(t, 29, end.Day())
}

func TestPreviousMonthWindow_CrossesYearBoundary(t *testing.T) {
	start, end := PreviousMonthWindow(2025, 0)

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.December, end.Month())
	assert.Equal(t, 31, end.Day())
}

func TestCurrentMonth_ZeroBased(t *testing.T) {
	year, month := CurrentMonth(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, 2025, year)
	assert.Equal(t, 0, month)
}
