package interfaces

import (
	"context"

	"parkwise/internal/models"
	"parkwise/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LocationRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Location, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Location, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Occupancy
	AdjustAvailableSpaces(ctx context.Context, id primitive.ObjectID, delta int) error
	Count(ctx context.Context) (int64, error)
}
