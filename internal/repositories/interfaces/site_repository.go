package interfaces

import (
	"context"

	"parkwise/internal/models"
	"parkwise/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SiteRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, site *models.Site) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Site, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Site, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Scoped queries
	GetByLocation(ctx context.Context, locationID primitive.ObjectID) ([]*models.Site, error)
	AdjustAvailableSpaces(ctx context.Context, id primitive.ObjectID, delta int) error
	Count(ctx context.Context) (int64, error)
}
