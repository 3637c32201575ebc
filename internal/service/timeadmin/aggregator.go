package timeadmin

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workplanner/workplanner-backend-go/internal/domain/timeadmin"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/calendar"
)

var half = decimal.New(5, -1)

// Totals is the outcome of aggregating one employee over one window
type Totals struct {
	AdministeredHours float64
	RequiredHours     float64
	Difference        float64
	VacationDays      int
	Status            timeadmin.Status
}

// VacationWorkingDays sums the working days each vacation spends inside [windowStart, windowEnd].
// Vacations missing either date contribute nothing. Overlapping vacations are counted once per
// vacation, so the result can exceed the working days of the window.
func VacationWorkingDays(vacations []timeadmin.Vacation, windowStart, windowEnd time.Time) int {
	total := 0
	for _, v := range vacations {
		if v.StartDate == nil || v.EndDate == nil {
			continue
		}
		total += calendar.WorkingDaysInRange(*v.StartDate, *v.EndDate, windowStart, windowEnd)
	}
	return total
}

// Aggregate compares logged hours with the hours required by the working days not covered by
// vacation. Required hours go negative when vacationDays exceeds totalWorkingDays.
func Aggregate(entries []timeadmin.TimeEntry, vacationDays, totalWorkingDays int) Totals {
	administered := decimal.Zero
	for _, e := range entries {
		administered = administered.Add(decimal.NewFromFloat(e.Hours))
	}

	required := decimal.NewFromInt(int64(totalWorkingDays-vacationDays) * timeadmin.StandardDailyHours)
	difference := administered.Sub(required)

	return Totals{
		AdministeredHours: round2(administered),
		RequiredHours:     round2(required),
		Difference:        round2(difference),
		VacationDays:      vacationDays,
		Status:            classify(administered, required),
	}
}

func classify(administered, required decimal.Decimal) timeadmin.Status {
	switch {
	case administered.GreaterThanOrEqual(required):
		return timeadmin.StatusSufficient
	case administered.IsPositive():
		return timeadmin.StatusInsufficient
	default:
		return timeadmin.StatusNone
	}
}

// round2 rounds half up on the value scaled by 100: floor(x*100 + 0.5) / 100.
func round2(d decimal.Decimal) float64 {
	return d.Shift(2).Add(half).Floor().Shift(-2).InexactFloat64()
}
