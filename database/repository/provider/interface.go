// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"

	"careconnect/database"
	"careconnect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProviderRepository reads provider profiles. Profile management and the
// approval workflow are owned by a separate admin service.
type ProviderRepository interface {
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	ListApproved(ctx context.Context) ([]models.Provider, error)
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a new MongoDB ProviderRepository.
func NewMongoProviderRepo() ProviderRepository {
	return &mongoProviderRepo{
		coll: database.DB().Collection("providers"),
	}
}
