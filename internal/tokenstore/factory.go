package tokenstore

import (
	"appcenter-go/configs/config"
	"appcenter-go/internal/cstmerr"
	"appcenter-go/internal/dbclient"
	"context"
)

// FromConfig builds the store selected by cfg.TokenStore.Kind. The returned
// close func releases whatever the store holds open and is never nil.
func FromConfig(ctx context.Context, cfg *config.Config) (TokenStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.TokenStore.Kind {
	case "", "file":
		dir := cfg.TokenStore.Dir
		if dir == "" {
			dir = DefaultDir()
		}
		return NewFileStore(nil, dir), noop, nil
	case "memory":
		return NewMemoryStore(), noop, nil
	case "db":
		client, err := dbclient.NewDBClient(ctx, &cfg.Database)
		if err != nil {
			return nil, noop, err
		}
		store, err := NewDBStore(ctx, client)
		if err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		return store, client.Close, nil
	default:
		return nil, noop, cstmerr.NewConfigError("unknown token_store.kind "+cfg.TokenStore.Kind, nil)
	}
}
