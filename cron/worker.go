package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"careconnect/config"
	"careconnect/models"
	"careconnect/services/notification"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		title, body := reminderMessage(p)
		data := map[string]string{
			"appointmentId": p.AppointmentID,
			"reminderType":  p.Type,
			"startAt":       p.StartAt,
		}

		if err := notifSvc.SendPatientPushNotification(ctx, p.PatientID, title, body, data); err != nil {
			log.Printf("[ReminderHandler] Failed to send notification: %v", err)
			return err
		}
		return nil
	}
}

func reminderMessage(p models.ReminderPayload) (title, body string) {
	when := p.StartAt
	if t, err := time.Parse(time.RFC3339, p.StartAt); err == nil {
		when = t.Format("Mon, 02 Jan 15:04")
	}

	switch p.Type {
	case models.Reminder2h:
		title = "Your appointment is coming up"
		body = fmt.Sprintf("Your appointment with %s starts at %s, about two hours from now.", p.ProviderName, when)
	default:
		title = "Appointment reminder"
		body = fmt.Sprintf("You have an appointment with %s on %s.", p.ProviderName, when)
	}
	return title, body
}
