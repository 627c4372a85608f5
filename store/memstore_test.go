package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/docwiki/wikidoc"
)

func TestMemStoreGetMissingReturnsFalse(t *testing.T) {
	m := NewMemStore()
	_, ok, err := m.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStorePutThenGetRoundTrips(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()
	want := wikidoc.Comment{Short: wikidoc.Text{Value: "hello"}}

	require.NoError(t, m.Put(ctx, "k1", want))

	got, ok, err := m.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestMemStorePutOverwritesExistingKey(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, "k1", wikidoc.Comment{Short: wikidoc.Text{Value: "first"}}))
	require.NoError(t, m.Put(ctx, "k1", wikidoc.Comment{Short: wikidoc.Text{Value: "second"}}))

	got, ok, err := m.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", got.Short.(wikidoc.Text).Value)
}
