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

type vehicleCategoryRepository struct {
	collection *mongo.Collection
}

func NewVehicleCategoryRepository(db *mongo.Database) interfaces.VehicleCategoryRepository {
	return &vehicleCategoryRepository{
		collection: db.Collection("vehicle_categories"),
	}
}

// Basic CRUD operations
func (r *vehicleCategoryRepository) Create(ctx context.Context, category *models.VehicleCategory) error {
	category.ID = primitive.NewObjectID()
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()
	if category.Status == "" {
		category.Status = utils.StatusActive
	}

	_, err := r.collection.InsertOne(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicate
		}
		return fmt.Errorf("failed to create vehicle category: %w", err)
	}

	return nil
}

func (r *vehicleCategoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleCategory, error) {
	var category models.VehicleCategory
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle category: %w", err)
	}

	return &category, nil
}

func (r *vehicleCategoryRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleCategory, int64, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicle categories: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vehicle categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []*models.VehicleCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, 0, fmt.Errorf("failed to decode vehicle categories: %w", err)
	}

	return categories, total, nil
}

func (r *vehicleCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle category: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *vehicleCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle category: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

// Scoped queries
func (r *vehicleCategoryRepository) GetByLocation(ctx context.Context, locationID primitive.ObjectID) ([]*models.VehicleCategory, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"location_id": locationID,
		"status":      utils.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle categories by location: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []*models.VehicleCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode vehicle categories: %w", err)
	}

	return categories, nil
}

func (r *vehicleCategoryRepository) GetMonthlyPassesByLocation(ctx context.Context, locationID primitive.ObjectID) ([]*models.VehicleCategory, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"location_id":     locationID,
		"is_monthly_pass": true,
		"status":          utils.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly passes by location: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []*models.VehicleCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode monthly passes: %w", err)
	}

	return categories, nil
}
