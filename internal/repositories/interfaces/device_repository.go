package interfaces

import (
	"context"

	"parkwise/internal/models"
	"parkwise/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeviceRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, device *models.Device) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Device, error)
	GetByCode(ctx context.Context, deviceCode string) (*models.Device, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Device, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Scoped queries
	GetBySite(ctx context.Context, siteID primitive.ObjectID) ([]*models.Device, error)
	Count(ctx context.Context) (int64, error)
}
