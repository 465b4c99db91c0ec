package mongodb

import (
	"context"
	"fmt"
	"time"

	"parkwise/internal/models"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"
	"parkwise/pkg/cache"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type deviceRepository struct {
	collection *mongo.Collection
	cache      *cache.RedisCache
}

func NewDeviceRepository(db *mongo.Database, cache *cache.RedisCache) interfaces.DeviceRepository {
	return &deviceRepository{
		collection: db.Collection("devices"),
		cache:      cache,
	}
}

func deviceCodeCacheKey(deviceCode string) string {
	return fmt.Sprintf("device_code_%s", deviceCode)
}

// Basic CRUD operations
func (r *deviceRepository) Create(ctx context.Context, device *models.Device) error {
	device.ID = primitive.NewObjectID()
	device.CreatedAt = time.Now()
	device.UpdatedAt = time.Now()
	if device.Status == "" {
		device.Status = utils.StatusActive
	}

	_, err := r.collection.InsertOne(ctx, device)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicate
		}
		return fmt.Errorf("failed to create device: %w", err)
	}

	return nil
}

func (r *deviceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Device, error) {
	var device models.Device
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&device)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return &device, nil
}

// GetByCode is the hot path: every device-facing request carries a device
// code, so lookups go through the cache.
func (r *deviceRepository) GetByCode(ctx context.Context, deviceCode string) (*models.Device, error) {
	if r.cache != nil {
		var device models.Device
		if err := r.cache.Get(ctx, deviceCodeCacheKey(deviceCode), &device); err == nil {
			return &device, nil
		}
	}

	var device models.Device
	err := r.collection.FindOne(ctx, bson.M{"device_code": deviceCode}).Decode(&device)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get device by code: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, deviceCodeCacheKey(deviceCode), &device, utils.DeviceConfigCacheTTL)
	}

	return &device, nil
}

func (r *deviceRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Device, int64, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["device_code"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count devices: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list devices: %w", err)
	}
	defer cursor.Close(ctx)

	var devices []*models.Device
	if err := cursor.All(ctx, &devices); err != nil {
		return nil, 0, fmt.Errorf("failed to decode devices: %w", err)
	}

	return devices, total, nil
}

func (r *deviceRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	device, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update device: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	if r.cache != nil {
		r.cache.Delete(ctx, deviceCodeCacheKey(device.DeviceCode))
	}

	return nil
}

func (r *deviceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	device, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	if r.cache != nil {
		r.cache.Delete(ctx, deviceCodeCacheKey(device.DeviceCode))
	}

	return nil
}

// Scoped queries
func (r *deviceRepository) GetBySite(ctx context.Context, siteID primitive.ObjectID) ([]*models.Device, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"site_id": siteID})
	if err != nil {
		return nil, fmt.Errorf("failed to get devices by site: %w", err)
	}
	defer cursor.Close(ctx)

	var devices []*models.Device
	if err := cursor.All(ctx, &devices); err != nil {
		return nil, fmt.Errorf("failed to decode devices: %w", err)
	}

	return devices, nil
}

func (r *deviceRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": utils.StatusActive})
	if err != nil {
		return 0, fmt.Errorf("failed to count devices: %w", err)
	}

	return count, nil
}
