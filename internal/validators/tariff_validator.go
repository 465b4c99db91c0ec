package validators

import (
	"fmt"

	"parkwise/internal/models"
	"parkwise/internal/utils"
)

// ValidateTariff enforces the data-entry invariants on a tariff before it is
// stored: every interval well formed, intervals sorted ascending by
// FromMinute, and no two intervals overlapping. The read path and the fee
// engine rely on these holding.
func ValidateTariff(tariff *models.Tariff) ValidationErrors {
	errors := ValidateStruct(tariff)

	if tariff.GraceTime < 0 {
		errors = append(errors, ValidationError{
			Field:   "GraceTime",
			Tag:     "min",
			Value:   fmt.Sprintf("%d", tariff.GraceTime),
			Message: "Grace time cannot be negative",
		})
	}

	errors = append(errors, validateIntervals(tariff.Intervals)...)
	return errors
}

func validateIntervals(intervals []models.TariffInterval) ValidationErrors {
	var errors ValidationErrors

	if len(intervals) == 0 {
		errors = append(errors, ValidationError{
			Field:   "Intervals",
			Tag:     "required",
			Message: "At least one tariff interval is required",
		})
		return errors
	}

	if len(intervals) > utils.MaxTariffIntervals {
		errors = append(errors, ValidationError{
			Field:   "Intervals",
			Tag:     "max",
			Value:   fmt.Sprintf("%d", len(intervals)),
			Message: fmt.Sprintf("At most %d tariff intervals are allowed", utils.MaxTariffIntervals),
		})
	}

	for i, interval := range intervals {
		field := fmt.Sprintf("Intervals[%d]", i)

		if interval.FromMinute < 0 {
			errors = append(errors, ValidationError{
				Field:   field,
				Tag:     "min",
				Value:   fmt.Sprintf("%d", interval.FromMinute),
				Message: "Interval start cannot be negative",
			})
		}
		if interval.ToMinute <= interval.FromMinute {
			errors = append(errors, ValidationError{
				Field:   field,
				Tag:     "interval_range",
				Value:   fmt.Sprintf("%d-%d", interval.FromMinute, interval.ToMinute),
				Message: "Interval end must be greater than interval start",
			})
		}
		if interval.ToMinute > utils.MaxIntervalMinutes {
			errors = append(errors, ValidationError{
				Field:   field,
				Tag:     "max",
				Value:   fmt.Sprintf("%d", interval.ToMinute),
				Message: "Interval end exceeds the maximum supported duration",
			})
		}
		if interval.Amount < 0 {
			errors = append(errors, ValidationError{
				Field:   field,
				Tag:     "min",
				Value:   fmt.Sprintf("%f", interval.Amount),
				Message: "Interval amount cannot be negative",
			})
		}

		// Interval i+1 must start at or after the end of interval i.
		if i > 0 {
			prev := intervals[i-1]
			if interval.FromMinute < prev.FromMinute {
				errors = append(errors, ValidationError{
					Field:   field,
					Tag:     "interval_order",
					Value:   fmt.Sprintf("%d", interval.FromMinute),
					Message: "Intervals must be ordered by start minute",
				})
			} else if interval.FromMinute < prev.ToMinute {
				errors = append(errors, ValidationError{
					Field:   field,
					Tag:     "interval_overlap",
					Value:   fmt.Sprintf("%d-%d", interval.FromMinute, interval.ToMinute),
					Message: fmt.Sprintf("Interval overlaps the previous interval ending at %d", prev.ToMinute),
				})
			}
		}
	}

	return errors
}

// ValidateOvernightPolicy checks an overnight policy before it is stored.
func ValidateOvernightPolicy(policy *models.OvernightPolicy) ValidationErrors {
	errors := ValidateStruct(policy)

	if policy.Amount < 0 {
		errors = append(errors, ValidationError{
			Field:   "Amount",
			Tag:     "min",
			Value:   fmt.Sprintf("%f", policy.Amount),
			Message: "Overnight amount cannot be negative",
		})
	}

	return errors
}

// ValidateVehicleCategory checks a vehicle category before it is stored.
// Monthly-pass categories must carry a positive pass price.
func ValidateVehicleCategory(category *models.VehicleCategory) ValidationErrors {
	errors := ValidateStruct(category)

	if category.Amount < 0 {
		errors = append(errors, ValidationError{
			Field:   "Amount",
			Tag:     "min",
			Value:   fmt.Sprintf("%f", category.Amount),
			Message: "Amount cannot be negative",
		})
	}
	if category.IsMonthlyPass && category.Amount <= 0 {
		errors = append(errors, ValidationError{
			Field:   "Amount",
			Tag:     "monthly_amount",
			Value:   fmt.Sprintf("%f", category.Amount),
			Message: "Monthly-pass categories require a positive pass amount",
		})
	}

	return errors
}
