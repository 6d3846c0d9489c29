// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"careconnect/database"
	"careconnect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository stores recurring weekly rules and date exceptions.
type AvailabilityRepository interface {
	GetRules(ctx context.Context, providerID string) ([]models.AvailabilityRule, error)
	GetExceptions(ctx context.Context, providerID string) ([]models.AvailabilityException, error)
	ReplaceRules(ctx context.Context, providerID string, rules []models.AvailabilityRule) error
	UpsertException(ctx context.Context, ex models.AvailabilityException) error
	DeleteException(ctx context.Context, providerID, date string) error
	EnsureIndexes() error
}

type mongoAvailabilityRepo struct {
	rulesColl      *mongo.Collection
	exceptionsColl *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.DB()
	return &mongoAvailabilityRepo{
		rulesColl:      db.Collection("availability_rules"),
		exceptionsColl: db.Collection("availability_exceptions"),
	}
}
