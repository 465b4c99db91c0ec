package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"parkwise/internal/models"
)

func TestResolveMode(t *testing.T) {
	monthly := &models.VehicleCategory{IsMonthlyPass: true, Amount: 500}
	standard := &models.VehicleCategory{}
	activePolicy := &models.OvernightPolicy{Amount: 150, Status: "active"}
	inactivePolicy := &models.OvernightPolicy{Amount: 150, Status: "inactive"}

	tests := []struct {
		name      string
		category  *models.VehicleCategory
		overnight *models.OvernightPolicy
		duration  int
		want      Mode
	}{
		{"monthly always wins", monthly, activePolicy, 800, ModeMonthlyFlat},
		{"monthly wins on short stay", monthly, nil, 5, ModeMonthlyFlat},
		{"overnight past threshold", standard, activePolicy, 721, ModeOvernightFlat},
		{"threshold itself is not overnight", standard, activePolicy, 720, ModeStandardInterval},
		{"no policy stays standard", standard, nil, 800, ModeStandardInterval},
		{"inactive policy stays standard", standard, inactivePolicy, 800, ModeStandardInterval},
		{"short stay standard", standard, activePolicy, 30, ModeStandardInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMode(tt.category, tt.overnight, tt.duration))
		})
	}
}

func TestSelectTariffSingle(t *testing.T) {
	tariff := &models.Tariff{ID: primitive.NewObjectID()}

	got, ambiguous := SelectTariff([]*models.Tariff{tariff})
	assert.Same(t, tariff, got)
	assert.False(t, ambiguous)
}

func TestSelectTariffEmpty(t *testing.T) {
	got, ambiguous := SelectTariff(nil)
	assert.Nil(t, got)
	assert.False(t, ambiguous)
}

func TestSelectTariffNewestWins(t *testing.T) {
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	older := &models.Tariff{ID: primitive.NewObjectID(), CreatedAt: now.Add(-48 * time.Hour)}
	newer := &models.Tariff{ID: primitive.NewObjectID(), CreatedAt: now}

	got, ambiguous := SelectTariff([]*models.Tariff{older, newer})
	require.NotNil(t, got)
	assert.Same(t, newer, got)
	assert.True(t, ambiguous)

	// Order of the input slice must not affect the outcome.
	got2, _ := SelectTariff([]*models.Tariff{newer, older})
	assert.Same(t, newer, got2)
}

func TestSelectTariffDeterministicOnEqualCreation(t *testing.T) {
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	a := &models.Tariff{ID: primitive.NewObjectID(), CreatedAt: now}
	b := &models.Tariff{ID: primitive.NewObjectID(), CreatedAt: now}

	first, _ := SelectTariff([]*models.Tariff{a, b})
	second, _ := SelectTariff([]*models.Tariff{b, a})
	assert.Same(t, first, second)
}
