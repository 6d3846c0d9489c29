// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careconnect/models"
)

func (r *mongoAvailabilityRepo) GetRules(ctx context.Context, providerID string) ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.rulesColl.Find(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.AvailabilityRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("failed to decode availability rules: %w", err)
	}
	return rules, nil
}

func (r *mongoAvailabilityRepo) GetExceptions(ctx context.Context, providerID string) ([]models.AvailabilityException, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.exceptionsColl.Find(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability exceptions: %w", err)
	}
	defer cursor.Close(ctx)

	var exceptions []models.AvailabilityException
	if err := cursor.All(ctx, &exceptions); err != nil {
		return nil, fmt.Errorf("failed to decode availability exceptions: %w", err)
	}
	return exceptions, nil
}

// ReplaceRules swaps the provider's full weekly schedule in one shot.
// Providers edit their week as a whole, so partial rule updates are not offered.
func (r *mongoAvailabilityRepo) ReplaceRules(ctx context.Context, providerID string, rules []models.AvailabilityRule) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := r.rulesColl.DeleteMany(ctx, bson.M{"providerId": providerID}); err != nil {
		return fmt.Errorf("failed to clear availability rules: %w", err)
	}
	if len(rules) == 0 {
		return nil
	}

	docs := make([]interface{}, len(rules))
	for i, rule := range rules {
		if rule.ID == "" {
			rule.ID = uuid.New().String()
		}
		rule.ProviderID = providerID
		docs[i] = rule
	}
	if _, err := r.rulesColl.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert availability rules: %w", err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) UpsertException(ctx context.Context, ex models.AvailabilityException) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ex.ID == "" {
		ex.ID = uuid.New().String()
	}
	filter := bson.M{"providerId": ex.ProviderID, "date": ex.Date}
	update := bson.M{"$set": bson.M{
		"closed":    ex.Closed,
		"startTime": ex.StartTime,
		"endTime":   ex.EndTime,
	}, "$setOnInsert": bson.M{
		"id":         ex.ID,
		"providerId": ex.ProviderID,
		"date":       ex.Date,
	}}

	opts := options.Update().SetUpsert(true)
	if _, err := r.exceptionsColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert availability exception: %w", err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) DeleteException(ctx context.Context, providerID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.exceptionsColl.DeleteOne(ctx, bson.M{"providerId": providerID, "date": date})
	if err != nil {
		return fmt.Errorf("failed to delete availability exception: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
