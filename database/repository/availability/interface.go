// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"time"

	"fleetly/config"
	"fleetly/database"
	"fleetly/models"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"
)

// AvailabilityRepository is the storage-side availability provider. Its read
// method is the same shape the scheduling engine consumes, so a repository
// (or its cached wrapper) plugs straight into a scheduling session.
type AvailabilityRepository interface {
	GetUnavailableSlots(ctx context.Context, vehicleID string, start, end time.Time, bookingType models.BookingType) ([]models.UnavailableSlot, error)
	UpsertSlots(ctx context.Context, slots []models.UnavailableSlot) ([]string, error)
	RemoveSlotsForVehicle(ctx context.Context, vehicleID string) error
}

type mongoAvailabilityRepo struct {
	coll    *mongo.Collection
	limiter *rate.Limiter
}

// NewMongoAvailabilityRepo constructs the MongoDB-backed repository. Queries
// are throttled to the configured per-second rate so a fast-scrolling
// calendar cannot stampede the store.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	qps := config.AppConfig.AvailabilityQueryRate
	if qps < 1 {
		qps = 1
	}
	return &mongoAvailabilityRepo{
		coll:    db.Collection(config.AppConfig.AvailabilityCollection),
		limiter: rate.NewLimiter(rate.Limit(qps), qps),
	}
}
