package pricing

import (
	"sort"
	"strings"

	"parkwise/internal/models"
)

// Mode is the pricing path chosen for a completed stay.
type Mode string

const (
	// ModeMonthlyFlat bills the category's flat monthly-pass amount and
	// ignores tariff intervals entirely.
	ModeMonthlyFlat Mode = "monthly_flat"
	// ModeOvernightFlat bills the category's overnight override amount.
	ModeOvernightFlat Mode = "overnight_flat"
	// ModeStandardInterval defers to tariff interval accumulation.
	ModeStandardInterval Mode = "standard_interval"
)

const (
	// OvernightThresholdMinutes is the stay duration beyond which an
	// overnight policy, when one exists for the category, supersedes
	// interval pricing.
	OvernightThresholdMinutes = 720

	// MonthlyPassValidityDays is the validity window of a monthly pass
	// from issuance.
	MonthlyPassValidityDays = 30
)

// ResolveMode decides whether a special pricing mode supersedes interval
// pricing for a completed stay. Monthly-pass status is checked first and
// always wins: a pass holder incurs no per-stay fee even past the overnight
// threshold.
func ResolveMode(category *models.VehicleCategory, overnight *models.OvernightPolicy, durationMinutes int) Mode {
	if category != nil && category.IsMonthlyPass {
		return ModeMonthlyFlat
	}

	if durationMinutes > OvernightThresholdMinutes && overnight != nil && overnight.IsActive() {
		return ModeOvernightFlat
	}

	return ModeStandardInterval
}

// SelectTariff picks the applicable tariff from the active tariffs matching
// a scope. The schema does not enforce a single active tariff per scope, so
// when several match the most recently created one wins, with the ID hex as
// a final tie-break to keep resolution deterministic across calls. The
// second return reports whether the scope was ambiguous.
func SelectTariff(tariffs []*models.Tariff) (*models.Tariff, bool) {
	if len(tariffs) == 0 {
		return nil, false
	}
	if len(tariffs) == 1 {
		return tariffs[0], false
	}

	selected := make([]*models.Tariff, len(tariffs))
	copy(selected, tariffs)

	sort.Slice(selected, func(i, j int) bool {
		if !selected[i].CreatedAt.Equal(selected[j].CreatedAt) {
			return selected[i].CreatedAt.After(selected[j].CreatedAt)
		}
		return strings.Compare(selected[i].ID.Hex(), selected[j].ID.Hex()) > 0
	})

	return selected[0], true
}
