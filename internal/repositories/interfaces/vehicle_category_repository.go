package interfaces

import (
	"context"

	"parkwise/internal/models"
	"parkwise/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleCategoryRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, category *models.VehicleCategory) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleCategory, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleCategory, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Scoped queries
	GetByLocation(ctx context.Context, locationID primitive.ObjectID) ([]*models.VehicleCategory, error)
	GetMonthlyPassesByLocation(ctx context.Context, locationID primitive.ObjectID) ([]*models.VehicleCategory, error)
}
