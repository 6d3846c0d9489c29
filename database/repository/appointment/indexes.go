// FILE: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on appointment ID.
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Conflict scans: providerId + status + interval bounds.
		{
			Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "status", Value: 1}, {Key: "startAt", Value: 1}, {Key: "endAt", Value: 1}},
			Options: options.Index().SetName("provider_status_start_end_idx"),
		},
		// Fallback double-booking guard: no two active appointments may
		// share a provider and start instant. Cancelled rows are excluded
		// so a freed slot can be rebooked.
		{
			Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "startAt", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_provider_start_active").
				SetPartialFilterExpression(bson.M{"status": bson.M{"$in": []string{"PENDING_CONFIRMATION", "CONFIRMED", "COMPLETED", "NO_SHOW"}}}),
		},
		// Reminder pass: status + startAt range.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "startAt", Value: 1}},
			Options: options.Index().SetName("status_start_idx"),
		},
		// Patient and provider listings.
		{
			Keys:    bson.D{{Key: "patientId", Value: 1}, {Key: "startAt", Value: -1}},
			Options: options.Index().SetName("patient_start_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
