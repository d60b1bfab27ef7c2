package tokenstore

import (
	"appcenter-go/configs/config"
	"appcenter-go/internal/cstmerr"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfig(t *testing.T) {
	ctx := context.Background()

	store, closeFn, err := FromConfig(ctx, &config.Config{TokenStore: config.TokenStoreConfig{Kind: "memory"}})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
	assert.NoError(t, closeFn())

	store, closeFn, err = FromConfig(ctx, &config.Config{TokenStore: config.TokenStoreConfig{Kind: "file", Dir: t.TempDir()}})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)
	assert.NoError(t, closeFn())

	store, closeFn, err = FromConfig(ctx, &config.Config{
		TokenStore: config.TokenStoreConfig{Kind: "db"},
		Database:   config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"},
	})
	require.NoError(t, err)
	assert.IsType(t, &DBStore{}, store)
	require.NoError(t, store.Set(ctx, "tok"))
	assert.NoError(t, closeFn())
}

func TestFromConfigUnknownKind(t *testing.T) {
	_, closeFn, err := FromConfig(context.Background(), &config.Config{TokenStore: config.TokenStoreConfig{Kind: "cookie"}})

	var cfgErr *cstmerr.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.NotNil(t, closeFn)
}
