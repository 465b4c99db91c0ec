package interfaces

import (
	"context"

	"parkwise/internal/models"
	"parkwise/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OvernightPolicyRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, policy *models.OvernightPolicy) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.OvernightPolicy, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.OvernightPolicy, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// GetActiveByCategory returns (nil, nil) when no active policy exists
	// for the category; callers treat absence as "no overnight pricing".
	GetActiveByCategory(ctx context.Context, categoryID primitive.ObjectID) (*models.OvernightPolicy, error)
	GetByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]*models.OvernightPolicy, error)
}
