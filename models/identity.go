package models

// Actor roles.
const (
	RolePatient  = "PATIENT"
	RoleProvider = "PROVIDER"
	RoleAdmin    = "ADMIN"
)

// Identity is the authenticated actor attached to a request. Token issuance
// belongs to the identity service; this service only validates tokens and
// reads the subject and role claims.
type Identity struct {
	ID   string `json:"id"`
	Role string `json:"role"` // PATIENT, PROVIDER, or ADMIN
}
