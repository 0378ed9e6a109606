// File: database/repository/availability/queries.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"fleetly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// slotTypesFor maps the requested booking type to the slot types the query
// should return. Day-level lookups cover both daily and weekly commitments;
// everything else matches exactly.
func slotTypesFor(bt models.BookingType) []models.BookingType {
	switch bt {
	case models.BookingDaily, models.BookingWeekly:
		return []models.BookingType{models.BookingDaily, models.BookingWeekly}
	default:
		return []models.BookingType{bt}
	}
}

func (r *mongoAvailabilityRepo) GetUnavailableSlots(ctx context.Context, vehicleID string, start, end time.Time, bookingType models.BookingType) ([]models.UnavailableSlot, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("availability query throttled: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Overlap test: a slot intersects [start, end] when it starts before the
	// range ends and ends after the range starts.
	filter := bson.M{
		"vehicleId": vehicleID,
		"startDate": bson.M{"$lte": end},
		"endDate":   bson.M{"$gte": start},
		"slotType":  bson.M{"$in": slotTypesFor(bookingType)},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unavailable slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.UnavailableSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding unavailable slots: %w", err)
	}
	return slots, nil
}

func (r *mongoAvailabilityRepo) UpsertSlots(ctx context.Context, slots []models.UnavailableSlot) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ids := make([]string, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		ids[i] = slot.ID

		filter := bson.M{"id": slot.ID}
		if _, err := r.coll.ReplaceOne(ctx, filter, slot, options.Replace().SetUpsert(true)); err != nil {
			return nil, fmt.Errorf("failed to upsert slot %s: %w", slot.ID, err)
		}
	}
	return ids, nil
}

func (r *mongoAvailabilityRepo) RemoveSlotsForVehicle(ctx context.Context, vehicleID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"vehicleId": vehicleID}); err != nil {
		return fmt.Errorf("failed to remove slots for vehicle %s: %w", vehicleID, err)
	}
	return nil
}
