package models

import "time"

// Patient is the booking side of the marketplace. Registration and
// authentication live in a separate identity service; this service only
// reads patient records for ownership checks and push delivery.
type Patient struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	FCMToken  string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
