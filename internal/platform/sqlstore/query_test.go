package sqlstore

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type dollarDialect struct{}

func (dollarDialect) Name() string { return "dollar" }

func (dollarDialect) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

func (dollarDialect) MapError(err error) error { return err }

func TestBuildQueries(t *testing.T) {
	q := buildQueries(
		"tours",
		"id",
		[]string{"title", "price_cents", "created_at"},
		[]string{"created_at"},
		"created_at, id",
		dollarDialect{},
	)

	assert.Equal(t, "SELECT id, title, price_cents, created_at FROM tours ORDER BY created_at, id", q.findAll)
	assert.Equal(t, "SELECT id, title, price_cents, created_at FROM tours WHERE id = $1", q.findByID)
	assert.Equal(t, "DELETE FROM tours WHERE id = $1", q.deleteBy)
	assert.Equal(t,
		"INSERT INTO tours (id, title, price_cents, created_at) VALUES ($1, $2, $3, $4) "+
			"ON CONFLICT (id) DO UPDATE SET title = excluded.title, price_cents = excluded.price_cents "+
			"RETURNING id, title, price_cents, created_at",
		q.upsert)
}

func TestBuildQueries_DefaultOrder(t *testing.T) {
	q := buildQueries("guides", "id", []string{"name"}, nil, "", dollarDialect{})
	assert.Equal(t, "SELECT id, name FROM guides ORDER BY id", q.findAll)
}
