package store

import (
	"testing"

	"promptstack-backend/internal/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	return NewStore(db, nil)
}

func newCachedTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewStore(db, client), mr
}
