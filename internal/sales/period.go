package sales

import (
	"time"

	"github.com/kopbox/kopbox-pos/internal/model"
)

// WeekRange returns the Monday and Sunday of the week containing t,
// truncated to dates.
func WeekRange(t time.Time) (time.Time, time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// Sum totals the given ledger lines.
func Sum(lines []model.SaleLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.LineTotal
	}
	return total
}
