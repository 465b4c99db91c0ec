// Package pricing is the tariff evaluation engine: given a completed stay,
// the vehicle category, the applicable tariff, and any overnight policy, it
// computes the amount owed. Evaluation is a pure function of its inputs; the
// caller supplies the exit timestamp, the engine never reads the clock, so
// the same inputs always produce the same assessment.
package pricing

import (
	"fmt"
	"sort"
	"time"

	"parkwise/internal/models"
	"parkwise/internal/utils"
)

// Classification tags the pricing path that produced an assessment so
// callers and reporting can attribute revenue correctly.
type Classification string

const (
	ClassGrace     Classification = "grace"
	ClassMonthly   Classification = "monthly"
	ClassOvernight Classification = "overnight"
	ClassStandard  Classification = "standard"
	ClassNotFound  Classification = "not_found"
)

// Assessment is the outcome of evaluating a completed stay.
type Assessment struct {
	Amount          float64        `json:"amount"`
	Classification  Classification `json:"classification"`
	DurationMinutes int            `json:"duration_minutes"`
	// ValidUntil is set for monthly-pass assessments: the end of the pass
	// validity window counted from entry.
	ValidUntil *time.Time `json:"valid_until,omitempty"`
}

// Evaluate computes the fee for a stay from entry to exit. The tariff's
// intervals must be sorted ascending by FromMinute; the catalog guarantees
// that on the read path. The returned amount is never negative.
//
// Order of checks: timestamps are validated, then monthly and overnight
// overrides are resolved, then the grace window, then interval lookup.
func Evaluate(entryTime, exitTime time.Time, category *models.VehicleCategory, tariff *models.Tariff, overnight *models.OvernightPolicy) (*Assessment, error) {
	if exitTime.Before(entryTime) {
		return nil, fmt.Errorf("evaluate stay: %w", ErrExitBeforeEntry)
	}

	duration := utils.DurationMinutesCeil(entryTime, exitTime)

	switch ResolveMode(category, overnight, duration) {
	case ModeMonthlyFlat:
		validUntil := entryTime.AddDate(0, 0, MonthlyPassValidityDays)
		return &Assessment{
			Amount:          utils.RoundAmount(category.Amount),
			Classification:  ClassMonthly,
			DurationMinutes: duration,
			ValidUntil:      &validUntil,
		}, nil

	case ModeOvernightFlat:
		return &Assessment{
			Amount:          utils.RoundAmount(overnight.Amount),
			Classification:  ClassOvernight,
			DurationMinutes: duration,
		}, nil
	}

	if tariff == nil || len(tariff.Intervals) == 0 {
		return nil, fmt.Errorf("evaluate stay: %w", ErrTariffNotFound)
	}

	if duration <= tariff.GraceTime {
		return &Assessment{
			Amount:          0,
			Classification:  ClassGrace,
			DurationMinutes: duration,
		}, nil
	}

	interval := lookupInterval(tariff.Intervals, duration)

	return &Assessment{
		Amount:          utils.RoundAmount(interval.Amount),
		Classification:  ClassStandard,
		DurationMinutes: duration,
	}, nil
}

// lookupInterval finds the bucket whose range holds the billable duration.
// Intervals are sorted, so this is a binary search for the first bucket with
// ToMinute above the duration. Durations beyond the last bucket use the last
// bucket's amount: the top tier is open-ended.
func lookupInterval(intervals []models.TariffInterval, durationMinutes int) models.TariffInterval {
	idx := sort.Search(len(intervals), func(i int) bool {
		return intervals[i].ToMinute > durationMinutes
	})
	if idx == len(intervals) {
		idx = len(intervals) - 1
	}
	return intervals[idx]
}
