package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tour is a paid excursion offered by a guide.
// Title is unique, PriceCents must not be negative and DurationMinutes must
// be positive; the storage schema enforces these rules.
type Tour struct {
	ID              uuid.UUID
	GuideID         uuid.UUID
	Title           string
	Destination     string
	PriceCents      int64
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Stamp sets the update time to now, and the creation time too when the
// tour has never been stored.
func (t Tour) Stamp(now time.Time) Tour {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	return t
}
