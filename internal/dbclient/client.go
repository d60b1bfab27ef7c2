package dbclient

import (
	"appcenter-go/configs/config"
	"appcenter-go/internal/cstmerr"
	"context"
	"fmt"
	"time"
)

// DBClient defines the ORM-like operations the token slot needs.
type DBClient interface {
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Migrate creates or updates the tables for the given models.
	Migrate(ctx context.Context, models ...interface{}) error

	// Save updates an existing record or creates it if it does not exist.
	// GORM's Save updates if PK is set, otherwise creates.
	Save(ctx context.Context, model interface{}) error

	// First retrieves the first record matching the given conditions.
	// Returns *cstmerr.DBNotFoundError when nothing matches.
	First(ctx context.Context, model interface{}, conditions ...interface{}) error
}

// NewDBClient returns a connected DBClient for the configured driver.
func NewDBClient(ctx context.Context, dbConfig *config.DatabaseConfig) (DBClient, error) {
	if dbConfig == nil {
		return nil, cstmerr.NewConfigError("database configuration is nil", nil)
	}

	var adapter DBClient
	switch dbConfig.Driver {
	case "postgres", "sqlite":
		adapter = NewGORMAdapter(dbConfig)
	default:
		return nil, cstmerr.NewDBConnectionError(fmt.Sprintf("failed to find db driver %s", dbConfig.Driver), nil)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) // Connection timeout
	defer cancel()

	if err := adapter.Connect(ctx); err != nil {
		return nil, err
	}
	return adapter, nil
}
