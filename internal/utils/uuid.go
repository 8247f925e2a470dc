package utils

import "github.com/google/uuid"

// UUIDGenerator produces broadcast instance identifiers. Version 7 UUIDs are
// preferred for their time ordering; generation falls back to a random v4
// string if the system clock source misbehaves.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new identifier string.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
