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

type vehicleEntryRepository struct {
	collection *mongo.Collection
}

func NewVehicleEntryRepository(db *mongo.Database) interfaces.VehicleEntryRepository {
	return &vehicleEntryRepository{
		collection: db.Collection("vehicle_entries"),
	}
}

func (r *vehicleEntryRepository) Create(ctx context.Context, entry *models.VehicleEntry) error {
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	if entry.PaymentStatus == "" {
		entry.PaymentStatus = models.PaymentStatusPending
	}

	_, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicate
		}
		return fmt.Errorf("failed to create vehicle entry: %w", err)
	}

	return nil
}

func (r *vehicleEntryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleEntry, error) {
	var entry models.VehicleEntry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle entry: %w", err)
	}

	return &entry, nil
}

func (r *vehicleEntryRepository) GetByTransactionID(ctx context.Context, transactionID string) (*models.VehicleEntry, error) {
	var entry models.VehicleEntry
	err := r.collection.FindOne(ctx, bson.M{"transaction_id": transactionID}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle entry by transaction ID: %w", err)
	}

	return &entry, nil
}

func (r *vehicleEntryRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleEntry, int64, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["vehicle_number"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	return r.findPage(ctx, filter, params)
}

func (r *vehicleEntryRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle entry: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

// FinalizeExit matches only open entries, so a repeated exit for the same
// transaction reports ErrNotFound and the first record stays untouched.
func (r *vehicleEntryRepository) FinalizeExit(ctx context.Context, transactionID string, exitTime time.Time, amount float64, feeClass string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{
			"transaction_id": transactionID,
			"exit_time":      nil,
		},
		bson.M{"$set": bson.M{
			"exit_time":   exitTime,
			"amount_paid": amount,
			"fee_class":   feeClass,
			"updated_at":  time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to finalize vehicle exit: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

// Session views
func (r *vehicleEntryRepository) ListActive(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleEntry, int64, error) {
	return r.findPage(ctx, bson.M{"exit_time": nil}, params)
}

func (r *vehicleEntryRepository) CountActive(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"exit_time": nil})
	if err != nil {
		return 0, fmt.Errorf("failed to count active vehicle entries: %w", err)
	}

	return count, nil
}

func (r *vehicleEntryRepository) AverageStayMinutes(ctx context.Context, from, to time.Time) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"exit_time": bson.M{"$gte": from, "$lte": to},
		}},
		{"$project": bson.M{
			"stay_minutes": bson.M{"$divide": []interface{}{
				bson.M{"$subtract": []interface{}{"$exit_time", "$entry_time"}},
				60000,
			}},
		}},
		{"$group": bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$stay_minutes"},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate average stay: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Average float64 `bson:"average"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode average stay: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Average, nil
}

func (r *vehicleEntryRepository) findPage(ctx context.Context, filter bson.M, params *utils.PaginationParams) ([]*models.VehicleEntry, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicle entries: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vehicle entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*models.VehicleEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, 0, fmt.Errorf("failed to decode vehicle entries: %w", err)
	}

	return entries, total, nil
}
