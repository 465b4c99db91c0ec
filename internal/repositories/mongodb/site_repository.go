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

type siteRepository struct {
	collection *mongo.Collection
}

func NewSiteRepository(db *mongo.Database) interfaces.SiteRepository {
	return &siteRepository{
		collection: db.Collection("sites"),
	}
}

// Basic CRUD operations
func (r *siteRepository) Create(ctx context.Context, site *models.Site) error {
	site.ID = primitive.NewObjectID()
	site.CreatedAt = time.Now()
	site.UpdatedAt = time.Now()
	if site.Status == "" {
		site.Status = utils.StatusActive
	}
	if site.AvailableSpaces == 0 {
		site.AvailableSpaces = site.TotalSpaces
	}

	_, err := r.collection.InsertOne(ctx, site)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicate
		}
		return fmt.Errorf("failed to create site: %w", err)
	}

	return nil
}

func (r *siteRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Site, error) {
	var site models.Site
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&site)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get site: %w", err)
	}

	return &site, nil
}

func (r *siteRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Site, int64, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sites: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sites: %w", err)
	}
	defer cursor.Close(ctx)

	var sites []*models.Site
	if err := cursor.All(ctx, &sites); err != nil {
		return nil, 0, fmt.Errorf("failed to decode sites: %w", err)
	}

	return sites, total, nil
}

func (r *siteRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update site: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *siteRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

// Scoped queries
func (r *siteRepository) GetByLocation(ctx context.Context, locationID primitive.ObjectID) ([]*models.Site, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"location_id": locationID})
	if err != nil {
		return nil, fmt.Errorf("failed to get sites by location: %w", err)
	}
	defer cursor.Close(ctx)

	var sites []*models.Site
	if err := cursor.All(ctx, &sites); err != nil {
		return nil, fmt.Errorf("failed to decode sites: %w", err)
	}

	return sites, nil
}

func (r *siteRepository) AdjustAvailableSpaces(ctx context.Context, id primitive.ObjectID, delta int) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"available_spaces": delta},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to adjust available spaces: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *siteRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": utils.StatusActive})
	if err != nil {
		return 0, fmt.Errorf("failed to count sites: %w", err)
	}

	return count, nil
}
