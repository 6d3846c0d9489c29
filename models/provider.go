package models

import "time"

// Provider lifecycle states. Only APPROVED providers are bookable; the
// approval workflow itself lives outside this service.
const (
	ProviderStatusPending  = "PENDING"
	ProviderStatusApproved = "APPROVED"
	ProviderStatusRejected = "REJECTED"
)

// Provider is a bookable practitioner profile.
type Provider struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Specialty string    `bson:"specialty" json:"specialty"`
	City      string    `bson:"city,omitempty" json:"city,omitempty"`
	Status    string    `bson:"status" json:"status"`
	PriceMin  float64   `bson:"priceMin" json:"priceMin"` // snapshotted into bookings
	PriceMax  float64   `bson:"priceMax,omitempty" json:"priceMax,omitempty"`
	FCMToken  string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Bookable reports whether new appointments may target this provider.
func (p Provider) Bookable() bool {
	return p.Status == ProviderStatusApproved
}
