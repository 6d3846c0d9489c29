package notification

import (
	"context"
	"fmt"

	patientRepo "careconnect/database/repository/patient"
	providerRepo "careconnect/database/repository/provider"
	"careconnect/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendPatientPushNotification(ctx context.Context, patientID, title, body string, data map[string]string) error
	SendProviderPushNotification(ctx context.Context, providerID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	patients  patientRepo.PatientRepository
	providers providerRepo.ProviderRepository
}

func NewDefaultNotificationService(
	patients patientRepo.PatientRepository,
	providers providerRepo.ProviderRepository,
) (*DefaultNotificationService, error) {
	if patients == nil || providers == nil {
		return nil, fmt.Errorf("notification service initialization error: patient or provider repository is nil")
	}
	return &DefaultNotificationService{
		patients:  patients,
		providers: providers,
	}, nil
}

// SendPatientPushNotification looks up a patient's FCM token and sends a push.
func (s *DefaultNotificationService) SendPatientPushNotification(
	ctx context.Context,
	patientID, title, body string,
	data map[string]string,
) error {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return fmt.Errorf("SendPatientPushNotification: could not find patient %s: %w", patientID, err)
	}
	if p.FCMToken == "" {
		return fmt.Errorf("SendPatientPushNotification: patient %s has no FCM token", patientID)
	}

	msg := &messaging.Message{
		Token: p.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPatientPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}

// SendProviderPushNotification looks up a provider's FCM token and sends a push.
func (s *DefaultNotificationService) SendProviderPushNotification(
	ctx context.Context,
	providerID, title, body string,
	data map[string]string,
) error {
	prov, err := s.providers.GetByID(ctx, providerID)
	if err != nil {
		return fmt.Errorf("SendProviderPushNotification: could not find provider %s: %w", providerID, err)
	}
	if prov.FCMToken == "" {
		return fmt.Errorf("SendProviderPushNotification: provider %s has no FCM token", providerID)
	}

	msg := &messaging.Message{
		Token: prov.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendProviderPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}
