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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type overnightPolicyRepository struct {
	collection *mongo.Collection
}

func NewOvernightPolicyRepository(db *mongo.Database) interfaces.OvernightPolicyRepository {
	return &overnightPolicyRepository{
		collection: db.Collection("overnight_policies"),
	}
}

// Basic CRUD operations
func (r *overnightPolicyRepository) Create(ctx context.Context, policy *models.OvernightPolicy) error {
	policy.ID = primitive.NewObjectID()
	policy.CreatedAt = time.Now()
	policy.UpdatedAt = time.Now()
	if policy.Status == "" {
		policy.Status = utils.StatusActive
	}

	_, err := r.collection.InsertOne(ctx, policy)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicate
		}
		return fmt.Errorf("failed to create overnight policy: %w", err)
	}

	return nil
}

func (r *overnightPolicyRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.OvernightPolicy, error) {
	var policy models.OvernightPolicy
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&policy)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get overnight policy: %w", err)
	}

	return &policy, nil
}

func (r *overnightPolicyRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.OvernightPolicy, int64, error) {
	filter := bson.M{}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count overnight policies: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list overnight policies: %w", err)
	}
	defer cursor.Close(ctx)

	var policies []*models.OvernightPolicy
	if err := cursor.All(ctx, &policies); err != nil {
		return nil, 0, fmt.Errorf("failed to decode overnight policies: %w", err)
	}

	return policies, total, nil
}

func (r *overnightPolicyRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update overnight policy: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *overnightPolicyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete overnight policy: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

// GetActiveByCategory returns the newest active policy for the category, or
// (nil, nil) when none exists.
func (r *overnightPolicyRepository) GetActiveByCategory(ctx context.Context, categoryID primitive.ObjectID) (*models.OvernightPolicy, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var policy models.OvernightPolicy
	err := r.collection.FindOne(ctx, bson.M{
		"vehicle_category_id": categoryID,
		"status":              utils.StatusActive,
	}, opts).Decode(&policy)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get overnight policy by category: %w", err)
	}

	return &policy, nil
}

func (r *overnightPolicyRepository) GetByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]*models.OvernightPolicy, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"vehicle_category_id": categoryID})
	if err != nil {
		return nil, fmt.Errorf("failed to get overnight policies by category: %w", err)
	}
	defer cursor.Close(ctx)

	var policies []*models.OvernightPolicy
	if err := cursor.All(ctx, &policies); err != nil {
		return nil, fmt.Errorf("failed to decode overnight policies: %w", err)
	}

	return policies, nil
}
