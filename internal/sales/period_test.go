package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kopbox/kopbox-pos/internal/model"
)

func TestWeekRangeStartsMonday(t *testing.T) {
	cases := []struct {
		in    time.Time
		start time.Time
		end   time.Time
	}{
		// 2026-08-31 is a Monday.
		{
			time.Date(2026, 8, 31, 15, 4, 5, 0, time.Local),
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local),
			time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local),
		},
		// Mid-week Thursday.
		{
			time.Date(2026, 9, 3, 0, 0, 0, 0, time.Local),
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local),
			time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local),
		},
		// Sunday still belongs to the week that began the previous Monday.
		{
			time.Date(2026, 9, 6, 23, 59, 0, 0, time.Local),
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local),
			time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local),
		},
	}
	for _, tc := range cases {
		start, end := WeekRange(tc.in)
		assert.Equal(t, tc.start, start, "start for %s", tc.in)
		assert.Equal(t, tc.end, end, "end for %s", tc.in)
	}
}

func TestSum(t *testing.T) {
	assert.Zero(t, Sum(nil))
	assert.Equal(t, int64(45000), Sum([]model.SaleLine{
		{LineTotal: 20000},
		{LineTotal: 20000},
		{LineTotal: 5000},
	}))
}
