package mongodb

import (
	"context"
	"fmt"
	"time"

	"parkwise/internal/models"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type transactionRepository struct {
	collection *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) interfaces.TransactionRepository {
	return &transactionRepository{
		collection: db.Collection("transactions"),
	}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	transaction.ID = primitive.NewObjectID()
	transaction.CreatedAt = time.Now()
	transaction.UpdatedAt = time.Now()
	if transaction.PaymentStatus == "" {
		transaction.PaymentStatus = models.PaymentStatusPending
	}

	_, err := r.collection.InsertOne(ctx, transaction)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicate
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&transaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &transaction, nil
}

func (r *transactionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.collection.FindOne(ctx, bson.M{"transaction_id": transactionID}).Decode(&transaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by transaction ID: %w", err)
	}

	return &transaction, nil
}

func (r *transactionRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Transaction, int64, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["$or"] = []bson.M{
			{"transaction_id": bson.M{"$regex": params.Search, "$options": "i"}},
			{"vehicle_number": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	return r.findPage(ctx, filter, params)
}

func (r *transactionRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

// Reporting queries
func (r *transactionRepository) ListByDateRange(ctx context.Context, from, to time.Time, params *utils.PaginationParams) ([]*models.Transaction, int64, error) {
	filter := bson.M{
		"entry_time": bson.M{"$gte": from, "$lte": to},
	}

	return r.findPage(ctx, filter, params)
}

func (r *transactionRepository) RevenueByCategory(ctx context.Context, from, to time.Time) ([]*interfaces.RevenueBucket, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"exit_time":   bson.M{"$gte": from, "$lte": to},
			"amount_paid": bson.M{"$ne": nil},
		}},
		{"$lookup": bson.M{
			"from":         "vehicle_categories",
			"localField":   "vehicle_category_id",
			"foreignField": "_id",
			"as":           "category",
		}},
		{"$unwind": "$category"},
		{"$group": bson.M{
			"_id":    "$category.name",
			"count":  bson.M{"$sum": 1},
			"amount": bson.M{"$sum": "$amount_paid"},
		}},
		{"$sort": bson.M{"amount": -1}},
	}

	return r.aggregateBuckets(ctx, pipeline)
}

func (r *transactionRepository) RevenueByDay(ctx context.Context, from, to time.Time) ([]*interfaces.RevenueBucket, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"exit_time":   bson.M{"$gte": from, "$lte": to},
			"amount_paid": bson.M{"$ne": nil},
		}},
		{"$group": bson.M{
			"_id":    bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$exit_time"}},
			"count":  bson.M{"$sum": 1},
			"amount": bson.M{"$sum": "$amount_paid"},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	return r.aggregateBuckets(ctx, pipeline)
}

func (r *transactionRepository) CountByPaymentStatus(ctx context.Context, status string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"payment_status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions by payment status: %w", err)
	}

	return count, nil
}

func (r *transactionRepository) TotalRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"exit_time":   bson.M{"$gte": from, "$lte": to},
			"amount_paid": bson.M{"$ne": nil},
		}},
		{"$group": bson.M{
			"_id":    nil,
			"amount": bson.M{"$sum": "$amount_paid"},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate total revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Amount float64 `bson:"amount"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode total revenue: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Amount, nil
}

func (r *transactionRepository) findPage(ctx context.Context, filter bson.M, params *utils.PaginationParams) ([]*models.Transaction, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var transactions []*models.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, 0, fmt.Errorf("failed to decode transactions: %w", err)
	}

	return transactions, total, nil
}

func (r *transactionRepository) aggregateBuckets(ctx context.Context, pipeline []bson.M) ([]*interfaces.RevenueBucket, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []*interfaces.RevenueBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to decode revenue buckets: %w", err)
	}

	return buckets, nil
}
