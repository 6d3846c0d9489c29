package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"careconnect/config"
	"careconnect/models"
	"careconnect/services/reminder"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
)

// AsynqEnqueuer adds reminder tasks to the delivery queue.
type AsynqEnqueuer struct {
	Client *asynq.Client
}

// NewAsynqEnqueuer connects an asynq client against the reminder queue DB.
func NewAsynqEnqueuer() *AsynqEnqueuer {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	return &AsynqEnqueuer{Client: client}
}

func (e *AsynqEnqueuer) EnqueueReminder(ctx context.Context, payload models.ReminderPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}

	// The task ID doubles as a queue-level dedup guard on top of the
	// dispatcher's sent-marker.
	taskID := fmt.Sprintf("%s:%s:%s", TypeReminderSend, payload.AppointmentID, payload.Type)
	task := asynq.NewTask(TypeReminderSend, data)
	if _, err := e.Client.EnqueueContext(ctx, task, asynq.TaskID(taskID), asynq.MaxRetry(3)); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
			return nil
		}
		return fmt.Errorf("enqueue reminder task: %w", err)
	}
	return nil
}

// StartReminderCron triggers the reminder pass on the configured schedule.
func StartReminderCron(dispatcher *reminder.Dispatcher) *cron.Cron {
	c := cron.New()
	spec := config.AppConfig.ReminderCronSpec
	if spec == "" {
		spec = "*/15 * * * *"
	}

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := dispatcher.Dispatch(ctx, time.Now().UTC()); err != nil {
			log.Printf("[ReminderCron] dispatch failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("[ReminderCron] invalid cron spec %q: %v", spec, err)
	}

	c.Start()
	log.Printf("[ReminderCron] scheduled reminder pass: %s", spec)
	return c
}
