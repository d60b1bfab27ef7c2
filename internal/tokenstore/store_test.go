package tokenstore

import (
	"appcenter-go/configs/config"
	"appcenter-go/internal/cstmerr"
	"appcenter-go/internal/dbclient"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDBStore(t *testing.T) *DBStore {
	t.Helper()
	client, err := dbclient.NewDBClient(context.Background(), &config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	store, err := NewDBStore(context.Background(), client)
	require.NoError(t, err)
	return store
}

func TestStoresRoundTrip(t *testing.T) {
	stores := map[string]func(t *testing.T) TokenStore{
		"memory": func(t *testing.T) TokenStore { return NewMemoryStore() },
		"file":   func(t *testing.T) TokenStore { return NewFileStore(afero.NewMemMapFs(), "/cfg/appcenter") },
		"os-file": func(t *testing.T) TokenStore {
			return NewFileStore(nil, filepath.Join(t.TempDir(), "nested"))
		},
		"db": func(t *testing.T) TokenStore { return newDBStore(t) },
	}

	for name, mk := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := mk(t)

			token, err := store.Get(ctx)
			require.NoError(t, err)
			assert.Empty(t, token, "slot starts empty")

			require.NoError(t, store.Set(ctx, "tok123"))
			token, err = store.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, "tok123", token)

			require.NoError(t, store.Set(ctx, "tok456"))
			token, err = store.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, "tok456", token)
		})
	}
}

func TestFileStoreWritesUnderKey(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := NewFileStore(fsys, "/data")

	require.NoError(t, store.Set(context.Background(), "abc"))

	data, err := afero.ReadFile(fsys, "/data/"+TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))

	exists, err := afero.Exists(fsys, "/data/"+TokenKey+".tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFileStoreSetFailure(t *testing.T) {
	store := NewFileStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/data")

	err := store.Set(context.Background(), "abc")

	var storeErr *cstmerr.TokenStoreError
	assert.ErrorAs(t, err, &storeErr)
}

type brokenDB struct{ dbclient.DBClient }

func (brokenDB) First(context.Context, interface{}, ...interface{}) error {
	return cstmerr.NewDBQueryError("GORM First failed", errors.New("disk I/O error"))
}

func TestDBStoreGetFailure(t *testing.T) {
	store := &DBStore{client: brokenDB{}}

	_, err := store.Get(context.Background())

	var storeErr *cstmerr.TokenStoreError
	assert.ErrorAs(t, err, &storeErr)
}
