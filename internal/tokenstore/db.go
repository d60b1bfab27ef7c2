package tokenstore

import (
	"appcenter-go/internal/cstmerr"
	"appcenter-go/internal/dbclient"
	"appcenter-go/internal/shared"
	"context"
	"errors"
)

// DBStore keeps the token in a one-row table.
type DBStore struct {
	client dbclient.DBClient
}

// NewDBStore migrates the token table and returns a store on client.
func NewDBStore(ctx context.Context, client dbclient.DBClient) (*DBStore, error) {
	if err := client.Migrate(ctx, &shared.TokenRecord{}); err != nil {
		return nil, cstmerr.NewTokenStoreError("migrate token table", err)
	}
	return &DBStore{client: client}, nil
}

func (s *DBStore) Get(ctx context.Context) (string, error) {
	var rec shared.TokenRecord
	err := s.client.First(ctx, &rec, "key = ?", TokenKey)
	if err != nil {
		var notFound *cstmerr.DBNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", cstmerr.NewTokenStoreError("read token row", err)
	}
	return rec.Value, nil
}

func (s *DBStore) Set(ctx context.Context, token string) error {
	if err := s.client.Save(ctx, &shared.TokenRecord{Key: TokenKey, Value: token}); err != nil {
		return cstmerr.NewTokenStoreError("write token row", err)
	}
	return nil
}
