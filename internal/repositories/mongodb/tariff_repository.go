package mongodb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"parkwise/internal/models"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"
	"parkwise/pkg/cache"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type tariffRepository struct {
	collection *mongo.Collection
	cache      *cache.RedisCache
}

func NewTariffRepository(db *mongo.Database, cache *cache.RedisCache) interfaces.TariffRepository {
	return &tariffRepository{
		collection: db.Collection("tariffs"),
		cache:      cache,
	}
}

func tariffScopeCacheKey(scope models.TariffScope) string {
	return fmt.Sprintf("tariff_scope_%s_%s_%s_%s",
		scope.LocationID.Hex(), scope.SiteID.Hex(), scope.DeviceID.Hex(), scope.VehicleCategoryID.Hex())
}

// Basic CRUD operations
func (r *tariffRepository) Create(ctx context.Context, tariff *models.Tariff) error {
	tariff.ID = primitive.NewObjectID()
	tariff.CreatedAt = time.Now()
	tariff.UpdatedAt = time.Now()
	if tariff.Status == "" {
		tariff.Status = utils.StatusActive
	}
	sortIntervals(tariff.Intervals)

	_, err := r.collection.InsertOne(ctx, tariff)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicate
		}
		return fmt.Errorf("failed to create tariff: %w", err)
	}

	r.invalidateScopeCache(ctx)

	return nil
}

func (r *tariffRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Tariff, error) {
	var tariff models.Tariff
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tariff)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tariff: %w", err)
	}

	return &tariff, nil
}

func (r *tariffRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Tariff, int64, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tariffs: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tariffs: %w", err)
	}
	defer cursor.Close(ctx)

	var tariffs []*models.Tariff
	if err := cursor.All(ctx, &tariffs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode tariffs: %w", err)
	}

	return tariffs, total, nil
}

func (r *tariffRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	if intervals, ok := updates["intervals"].([]models.TariffInterval); ok {
		sortIntervals(intervals)
		updates["intervals"] = intervals
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update tariff: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.invalidateScopeCache(ctx)

	return nil
}

func (r *tariffRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete tariff: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.invalidateScopeCache(ctx)

	return nil
}

// Catalog read path
func (r *tariffRepository) GetActiveByScope(ctx context.Context, scope models.TariffScope) ([]*models.Tariff, error) {
	cacheKey := tariffScopeCacheKey(scope)
	if r.cache != nil {
		var tariffs []*models.Tariff
		if err := r.cache.Get(ctx, cacheKey, &tariffs); err == nil {
			return tariffs, nil
		}
	}

	cursor, err := r.collection.Find(ctx, bson.M{
		"location_id":         scope.LocationID,
		"site_id":             scope.SiteID,
		"device_id":           scope.DeviceID,
		"vehicle_category_id": scope.VehicleCategoryID,
		"status":              utils.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get tariffs by scope: %w", err)
	}
	defer cursor.Close(ctx)

	var tariffs []*models.Tariff
	if err := cursor.All(ctx, &tariffs); err != nil {
		return nil, fmt.Errorf("failed to decode tariffs: %w", err)
	}
	for _, t := range tariffs {
		sortIntervals(t.Intervals)
	}

	if r.cache != nil {
		r.cache.Set(ctx, cacheKey, tariffs, utils.TariffCacheTTL)
	}

	return tariffs, nil
}

func (r *tariffRepository) GetByLocation(ctx context.Context, locationID primitive.ObjectID) ([]*models.Tariff, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"location_id": locationID,
		"status":      utils.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get tariffs by location: %w", err)
	}
	defer cursor.Close(ctx)

	var tariffs []*models.Tariff
	if err := cursor.All(ctx, &tariffs); err != nil {
		return nil, fmt.Errorf("failed to decode tariffs: %w", err)
	}
	for _, t := range tariffs {
		sortIntervals(t.Intervals)
	}

	return tariffs, nil
}

// Scope lookups are cached per (location, site, device, category) tuple, so
// any tariff mutation clears the whole keyspace rather than chasing keys.
func (r *tariffRepository) invalidateScopeCache(ctx context.Context) {
	if r.cache != nil {
		r.cache.DeletePattern(ctx, "tariff_scope_*")
	}
}

func sortIntervals(intervals []models.TariffInterval) {
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].FromMinute < intervals[j].FromMinute
	})
}
