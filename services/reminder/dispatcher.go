package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	providerRepo "careconnect/database/repository/provider"
	"careconnect/models"
	"careconnect/utils"
)

// Enqueuer hands reminder payloads to the delivery queue.
type Enqueuer interface {
	EnqueueReminder(ctx context.Context, payload models.ReminderPayload) error
}

// SentMarker records that a (appointment, type) reminder left this service.
// MarkIfFirst returns false when the marker already existed.
type SentMarker interface {
	MarkIfFirst(ctx context.Context, appointmentID, reminderType string) (bool, error)
}

// Dispatcher glues the pass to the delivery queue: classify, dedup via the
// sent-marker, enqueue. Delivery itself happens in the notification worker.
type Dispatcher struct {
	Scheduler *Scheduler
	Providers providerRepo.ProviderRepository
	Marker    SentMarker
	Queue     Enqueuer
}

// Dispatch runs one reminder pass and enqueues a task per fresh match.
// Marker or enqueue failures for one appointment never abort the batch;
// the next pass picks the stragglers up again.
func (d *Dispatcher) Dispatch(ctx context.Context, now time.Time) error {
	logger := utils.GetLogger()

	matches, err := d.Scheduler.Run(ctx, now)
	if err != nil {
		return fmt.Errorf("reminder pass failed: %w", err)
	}

	enqueued := 0
	for _, m := range matches {
		first, err := d.Marker.MarkIfFirst(ctx, m.Appointment.ID, m.Type)
		if err != nil {
			logger.Warn("reminder marker check failed",
				zap.String("appointmentId", m.Appointment.ID),
				zap.String("type", m.Type),
				zap.Error(err),
			)
			continue
		}
		if !first {
			continue
		}

		providerName := m.Appointment.ProviderID
		if prov, err := d.Providers.GetByID(ctx, m.Appointment.ProviderID); err == nil {
			providerName = prov.Name
		} else if err != mongo.ErrNoDocuments {
			logger.Warn("reminder provider lookup failed",
				zap.String("providerId", m.Appointment.ProviderID),
				zap.Error(err),
			)
		}

		payload := models.ReminderPayload{
			AppointmentID: m.Appointment.ID,
			Type:          m.Type,
			PatientID:     m.Appointment.PatientID,
			ProviderName:  providerName,
			StartAt:       m.Appointment.StartAt.UTC().Format(time.RFC3339),
		}
		if err := d.Queue.EnqueueReminder(ctx, payload); err != nil {
			logger.Error("reminder enqueue failed",
				zap.String("appointmentId", m.Appointment.ID),
				zap.String("type", m.Type),
				zap.Error(err),
			)
			continue
		}
		enqueued++
	}

	logger.Info("reminder dispatch complete", zap.Int("enqueued", enqueued))
	return nil
}

// RedisSentMarker implements SentMarker with SETNX and a TTL comfortably
// past the 48h horizon.
type RedisSentMarker struct {
	Client *redis.Client
}

const markerTTL = 72 * time.Hour

func (m *RedisSentMarker) MarkIfFirst(ctx context.Context, appointmentID, reminderType string) (bool, error) {
	key := fmt.Sprintf("reminderSent:%s:%s", appointmentID, reminderType)
	return m.Client.SetNX(ctx, key, 1, markerTTL).Result()
}
