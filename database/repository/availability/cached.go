// File: database/repository/availability/cached.go
package availabilityRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fleetly/models"
	"fleetly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// cachedAvailabilityRepo layers a redis read-through cache over another
// repository. Cache failures are never fatal: a miss, a marshal error or a
// dead redis all fall back to the inner store.
type cachedAvailabilityRepo struct {
	inner AvailabilityRepository
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedAvailabilityRepo wraps inner with a redis read-through cache.
func NewCachedAvailabilityRepo(inner AvailabilityRepository, rdb *redis.Client, ttl time.Duration) AvailabilityRepository {
	return &cachedAvailabilityRepo{inner: inner, rdb: rdb, ttl: ttl}
}

func availabilityCacheKey(vehicleID string, start, end time.Time, bt models.BookingType) string {
	return fmt.Sprintf("availability:%s:%s:%s:%s",
		vehicleID, start.Format("2006-01-02"), end.Format("2006-01-02"), bt)
}

func (r *cachedAvailabilityRepo) GetUnavailableSlots(ctx context.Context, vehicleID string, start, end time.Time, bookingType models.BookingType) ([]models.UnavailableSlot, error) {
	logger := utils.GetLogger()
	key := availabilityCacheKey(vehicleID, start, end, bookingType)

	if raw, err := r.rdb.Get(ctx, key).Result(); err == nil {
		var slots []models.UnavailableSlot
		if err := json.Unmarshal([]byte(raw), &slots); err == nil {
			return slots, nil
		}
		logger.Debug("discarding undecodable availability cache entry", zap.String("key", key))
	} else if err != redis.Nil {
		logger.Debug("availability cache read failed", zap.String("key", key), zap.Error(err))
	}

	slots, err := r.inner.GetUnavailableSlots(ctx, vehicleID, start, end, bookingType)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(slots); err == nil {
		if err := r.rdb.Set(ctx, key, raw, r.ttl).Err(); err != nil {
			logger.Debug("availability cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return slots, nil
}

func (r *cachedAvailabilityRepo) UpsertSlots(ctx context.Context, slots []models.UnavailableSlot) ([]string, error) {
	ids, err := r.inner.UpsertSlots(ctx, slots)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, slot := range slots {
		if _, ok := seen[slot.VehicleID]; !ok {
			seen[slot.VehicleID] = struct{}{}
			r.invalidateVehicle(ctx, slot.VehicleID)
		}
	}
	return ids, nil
}

func (r *cachedAvailabilityRepo) RemoveSlotsForVehicle(ctx context.Context, vehicleID string) error {
	if err := r.inner.RemoveSlotsForVehicle(ctx, vehicleID); err != nil {
		return err
	}
	r.invalidateVehicle(ctx, vehicleID)
	return nil
}

// invalidateVehicle drops every cached range for a vehicle after a write.
func (r *cachedAvailabilityRepo) invalidateVehicle(ctx context.Context, vehicleID string) {
	logger := utils.GetLogger()
	pattern := fmt.Sprintf("availability:%s:*", vehicleID)

	iter := r.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := r.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Debug("availability cache invalidation failed",
				zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		logger.Debug("availability cache scan failed",
			zap.String("vehicleID", vehicleID), zap.Error(err))
	}
}
