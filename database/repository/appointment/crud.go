// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careconnect/models"
)

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, mongo.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) GetOccupying(ctx context.Context, providerID string, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := occupyingOverlapFilter(providerID, from, to)
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch occupying appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode occupying appointments: %w", err)
	}
	return appts, nil
}

// occupyingOverlapFilter matches non-cancelled appointments of the provider
// whose [startAt, endAt) interval strictly overlaps [from, to).
func occupyingOverlapFilter(providerID string, from, to time.Time) bson.M {
	return bson.M{
		"providerId": providerID,
		"status":     bson.M{"$in": models.OccupyingStatuses()},
		"startAt":    bson.M{"$lt": to},
		"endAt":      bson.M{"$gt": from},
	}
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, mongo.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"patientId": patientID})
}

func (r *mongoAppointmentRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"providerId": providerID})
}

func (r *mongoAppointmentRepo) ListUpcoming(ctx context.Context, statuses []string, from, to time.Time) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{
		"status":  bson.M{"$in": statuses},
		"startAt": bson.M{"$gte": from, "$lte": to},
	})
}

func (r *mongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}
