// FILE: database/repository/availability/indexes.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the availability collections.
func (r *mongoAvailabilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ruleIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: all rules for a provider, filtered by weekday in memory.
		{
			Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "dayOfWeek", Value: 1}},
			Options: options.Index().SetName("provider_day_idx"),
		},
	}
	if _, err := r.rulesColl.Indexes().CreateMany(ctx, ruleIndexes); err != nil {
		return fmt.Errorf("failed to create availability rule indexes: %w", err)
	}

	exceptionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// At most one exception per (provider, date).
		{
			Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_provider_date"),
		},
	}
	if _, err := r.exceptionsColl.Indexes().CreateMany(ctx, exceptionIndexes); err != nil {
		return fmt.Errorf("failed to create availability exception indexes: %w", err)
	}
	return nil
}
