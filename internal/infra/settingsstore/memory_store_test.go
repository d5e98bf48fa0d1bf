package settingsstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLanguage(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.GetLanguage(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.SetLanguage(ctx, "hi"))
	code, ok, err := store.GetLanguage(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hi", code)
}

func TestValkeyStoreKeyUsesPrefix(t *testing.T) {
	require.Equal(t, "wellness:language", NewValkeyStore(nil, "").languageKey())
	require.Equal(t, "app:language", NewValkeyStore(nil, "app").languageKey())
}
