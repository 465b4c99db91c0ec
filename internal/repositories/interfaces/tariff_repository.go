package interfaces

import (
	"context"

	"parkwise/internal/models"
	"parkwise/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TariffRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, tariff *models.Tariff) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Tariff, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Tariff, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Catalog read path. GetActiveByScope returns every active tariff
	// matching the scope with intervals sorted by FromMinute; the caller
	// applies the ambiguity tie-break.
	GetActiveByScope(ctx context.Context, scope models.TariffScope) ([]*models.Tariff, error)
	GetByLocation(ctx context.Context, locationID primitive.ObjectID) ([]*models.Tariff, error)
}
