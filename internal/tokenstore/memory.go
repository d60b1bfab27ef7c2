package tokenstore

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps the token for the lifetime of the process.
type MemoryStore struct {
	slot *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slot: cache.New(cache.NoExpiration, 0)}
}

func (s *MemoryStore) Get(_ context.Context) (string, error) {
	v, ok := s.slot.Get(TokenKey)
	if !ok {
		return "", nil
	}
	token, _ := v.(string)
	return token, nil
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	s.slot.Set(TokenKey, token, cache.NoExpiration)
	return nil
}
