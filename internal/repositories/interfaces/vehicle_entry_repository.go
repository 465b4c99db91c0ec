package interfaces

import (
	"context"
	"time"

	"parkwise/internal/models"
	"parkwise/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleEntryRepository interface {
	Create(ctx context.Context, entry *models.VehicleEntry) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleEntry, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*models.VehicleEntry, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleEntry, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// FinalizeExit records the exit outcome on an open entry. The update
	// matches only entries without an exit time so a second exit attempt
	// reports ErrNotFound instead of overwriting the first.
	FinalizeExit(ctx context.Context, transactionID string, exitTime time.Time, amount float64, feeClass string) error

	// Session views
	ListActive(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleEntry, int64, error)
	CountActive(ctx context.Context) (int64, error)
	AverageStayMinutes(ctx context.Context, from, to time.Time) (float64, error)
}
