package pkguid

import "github.com/google/uuid"

// UUID generates time-ordered v7 UUID strings. Each ATM session takes one
// as its ID, and the same value is the correlation ID on its log lines.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

// Generate panics only if the system random source fails.
func (u *UUID) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
