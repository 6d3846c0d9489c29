// File: database/repository/appointment/transaction.go
package appointmentRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"careconnect/models"
)

// InsertIfFree re-validates the overlap invariant and inserts the
// appointment inside one multi-document transaction: for a given provider,
// non-cancelled appointments stay pairwise non-overlapping no matter how
// many bookings race. The unique (providerId, startAt) index acts as a
// second line of defence when the deployment cannot run transactions.
func (r *mongoAppointmentRepo) InsertIfFree(ctx context.Context, appt *models.Appointment) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := occupyingOverlapFilter(appt.ProviderID, appt.StartAt, appt.EndAt)
		n, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if n > 0 {
			return ErrSlotTaken
		}

		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
