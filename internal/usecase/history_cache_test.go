package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smeta_admin/internal/domain/entities"
)

func TestHistoryCache_Toggle(t *testing.T) {
	t.Run("first open needs fetch", func(t *testing.T) {
		c := NewHistoryCache()
		open, needsFetch := c.Toggle(1)
		require.NotNil(t, open)
		assert.Equal(t, int64(1), *open)
		assert.True(t, needsFetch)
	})

	t.Run("toggle same item closes", func(t *testing.T) {
		c := NewHistoryCache()
		c.Toggle(1)
		open, needsFetch := c.Toggle(1)
		assert.Nil(t, open)
		assert.False(t, needsFetch)
	})

	t.Run("opening another item closes the first", func(t *testing.T) {
		c := NewHistoryCache()
		c.Toggle(1)
		open, _ := c.Toggle(2)
		require.NotNil(t, open)
		assert.Equal(t, int64(2), *open)
	})

	t.Run("memoized trail needs no second fetch", func(t *testing.T) {
		c := NewHistoryCache()
		c.Toggle(1)
		c.Put(1, []entities.ItemHistory{{ID: 10, ItemID: 1}})
		c.Toggle(1)
		_, needsFetch := c.Toggle(1)
		assert.False(t, needsFetch)

		got, ok := c.Cached(1)
		require.True(t, ok)
		assert.Len(t, got, 1)
	})

	t.Run("fetched empty trail is memoized", func(t *testing.T) {
		c := NewHistoryCache()
		c.Toggle(1)
		c.Put(1, nil)
		c.Toggle(1)
		_, needsFetch := c.Toggle(1)
		assert.False(t, needsFetch)

		got, ok := c.Cached(1)
		require.True(t, ok)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("failed fetch is retried on next open", func(t *testing.T) {
		c := NewHistoryCache()
		c.Toggle(1)
		c.SetFetchError(1, "boom")

		msg, ok := c.FetchError(1)
		require.True(t, ok)
		assert.Equal(t, "boom", msg)

		c.Toggle(1) // close
		open, needsFetch := c.Toggle(1)
		require.NotNil(t, open)
		assert.True(t, needsFetch)
		_, ok = c.FetchError(1)
		assert.False(t, ok)
	})
}

func TestHistoryCache_Drop(t *testing.T) {
	c := NewHistoryCache()
	c.Toggle(1)
	c.SetLoading(1, true)
	c.Put(1, []entities.ItemHistory{{ID: 10, ItemID: 1}})

	c.Drop(1)

	assert.Nil(t, c.OpenItem())
	assert.False(t, c.IsLoading(1))
	_, ok := c.Cached(1)
	assert.False(t, ok)
}
