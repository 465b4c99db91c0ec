package interfaces

import (
	"context"
	"time"

	"parkwise/internal/models"
	"parkwise/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RevenueBucket is one aggregation row for revenue reports, keyed either
// by category name or by calendar day depending on the query.
type RevenueBucket struct {
	Key    string  `bson:"_id" json:"key"`
	Count  int64   `bson:"count" json:"count"`
	Amount float64 `bson:"amount" json:"amount"`
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Transaction, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// Reporting queries
	ListByDateRange(ctx context.Context, from, to time.Time, params *utils.PaginationParams) ([]*models.Transaction, int64, error)
	RevenueByCategory(ctx context.Context, from, to time.Time) ([]*RevenueBucket, error)
	RevenueByDay(ctx context.Context, from, to time.Time) ([]*RevenueBucket, error)
	CountByPaymentStatus(ctx context.Context, status string) (int64, error)
	TotalRevenue(ctx context.Context, from, to time.Time) (float64, error)
}
