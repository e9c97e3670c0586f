package repo

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
)

func TestOrderRepo_ListQuery_NewestFirst(t *testing.T) {
	r := NewOrderRepo(nil)

	t.Run("all orders", func(t *testing.T) {
		query, args := r.listQuery(nil)
		assert.Contains(t, query, "ORDER BY placed_at DESC")
		assert.Empty(t, args)
	})

	t.Run("owner filter keeps the ordering", func(t *testing.T) {
		query, args := r.listQuery(sq.Eq{"owner_id": "user-1"})
		assert.Contains(t, query, "owner_id = $1")
		assert.Contains(t, query, "ORDER BY placed_at DESC")
		assert.Equal(t, []any{"user-1"}, args)
	})
}
