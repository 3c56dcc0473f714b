package cache

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *BadgerStore {
	t.Helper()

	store, err := Open("", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBadgerStore_SetGetDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, store.Delete(ctx, "k"), "deleting twice is fine")
}

func TestBadgerStore_TTL(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "short", []byte("v"), time.Second))
	require.NoError(t, store.Set(ctx, "forever", []byte("v"), 0))

	_, err := store.Get(ctx, "short")
	require.NoError(t, err)

	// badger stores expiry with second precision
	time.Sleep(2100 * time.Millisecond)

	_, err = store.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(ctx, "forever")
	assert.NoError(t, err)
}

func TestJSONHelpers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	type payload struct {
		Name  string   `json:"name"`
		Items []string `json:"items"`
	}

	in := payload{Name: "go", Items: []string{"a", "b"}}
	require.NoError(t, SetJSON(ctx, store, CourseKey("c1"), in, time.Hour))

	var out payload
	require.NoError(t, GetJSON(ctx, store, CourseKey("c1"), &out))
	assert.Equal(t, in, out)

	assert.ErrorIs(t, GetJSON(ctx, store, CourseKey("c2"), &out), ErrNotFound)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "session:u1", SessionKey("u1"))
	assert.Equal(t, "course:c1", CourseKey("c1"))
}
