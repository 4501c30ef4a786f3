package domain

import (
	"time"

	"github.com/google/uuid"
)

// Guide is a person who leads paid tours.
// Email is unique across guides.
type Guide struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stamp sets the update time to now, and the creation time too when the
// guide has never been stored.
func (g Guide) Stamp(now time.Time) Guide {
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now
	return g
}
