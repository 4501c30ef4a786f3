package sqlstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/passeio-api/internal/domain"
)

// GuideTable describes the guides table.
func GuideTable() Table[domain.Guide, uuid.UUID] {
	return Table[domain.Guide, uuid.UUID]{
		Name:      "guides",
		IDColumn:  "id",
		Columns:   []string{"name", "email", "created_at", "updated_at"},
		Immutable: []string{"created_at"},
		OrderBy:   "created_at, id",
		IDOf:      func(g domain.Guide) uuid.UUID { return g.ID },
		WithID: func(g domain.Guide, id uuid.UUID) domain.Guide {
			g.ID = id
			return g
		},
		NewID: uuid.New,
		Values: func(g domain.Guide) []any {
			return []any{g.Name, g.Email, g.CreatedAt, g.UpdatedAt}
		},
		Scan: func(s Scanner) (domain.Guide, error) {
			var g domain.Guide
			err := s.Scan(&g.ID, &g.Name, &g.Email, Time(&g.CreatedAt), Time(&g.UpdatedAt))
			return g, err
		},
		Prepare: func(g domain.Guide, now time.Time) domain.Guide { return g.Stamp(now) },
	}
}

// TourTable describes the tours table.
func TourTable() Table[domain.Tour, uuid.UUID] {
	return Table[domain.Tour, uuid.UUID]{
		Name:     "tours",
		IDColumn: "id",
		Columns: []string{
			"guide_id", "title", "destination", "price_cents", "duration_minutes",
			"created_at", "updated_at",
		},
		Immutable: []string{"created_at"},
		OrderBy:   "created_at, id",
		IDOf:      func(t domain.Tour) uuid.UUID { return t.ID },
		WithID: func(t domain.Tour, id uuid.UUID) domain.Tour {
			t.ID = id
			return t
		},
		NewID: uuid.New,
		Values: func(t domain.Tour) []any {
			return []any{
				t.GuideID, t.Title, t.Destination, t.PriceCents, t.DurationMinutes,
				t.CreatedAt, t.UpdatedAt,
			}
		},
		Scan: func(s Scanner) (domain.Tour, error) {
			var t domain.Tour
			err := s.Scan(
				&t.ID, &t.GuideID, &t.Title, &t.Destination, &t.PriceCents, &t.DurationMinutes,
				Time(&t.CreatedAt), Time(&t.UpdatedAt),
			)
			return t, err
		},
		Prepare: func(t domain.Tour, now time.Time) domain.Tour { return t.Stamp(now) },
	}
}
