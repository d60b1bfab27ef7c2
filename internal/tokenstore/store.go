// Package tokenstore holds the single authentication token slot used by the
// API client. Implementations differ only in where the slot lives.
package tokenstore

import "context"

// TokenKey names the slot in every backing medium.
const TokenKey = "token"

// TokenStore gets and sets the auth token.
//
// Get returns "" with a nil error when no token is stored; an error means the
// medium itself failed. A completed Set is visible to every later Get from
// the same process. Racing Set and Get calls are not ordered.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
}
