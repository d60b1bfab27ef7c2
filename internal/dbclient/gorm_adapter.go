package dbclient

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"appcenter-go/configs/config"
	"appcenter-go/internal/cstmerr"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// GORMAdapter implements the DBClient interface using the GORM library.
type GORMAdapter struct {
	db     *gorm.DB
	config *config.DatabaseConfig
}

// NewGORMAdapter creates a new GORMAdapter. Call Connect before use.
func NewGORMAdapter(cfg *config.DatabaseConfig) *GORMAdapter {
	return &GORMAdapter{
		config: cfg,
	}
}

func (ga *GORMAdapter) dialector() (gorm.Dialector, error) {
	switch ga.config.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
			ga.config.Host, ga.config.User, ga.config.Password,
			ga.config.DBName, ga.config.Port, ga.config.SSLMode)
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(ga.config.Path), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", ga.config.Driver)
	}
}

func (ga *GORMAdapter) Connect(ctx context.Context) error {
	if ga.db != nil {
		sqlDB, err := ga.db.DB()
		if err == nil {
			if err = sqlDB.PingContext(ctx); err == nil {
				return nil
			}
		}
	}

	dialector, err := ga.dialector()
	if err != nil {
		return cstmerr.NewDBConnectionError("no dialector", err)
	}

	gormLogger := logger.New(log.New(log.Writer(), "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold: time.Second, LogLevel: logger.Warn, IgnoreRecordNotFoundError: true, Colorful: false,
	})

	ga.db, err = gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	})
	if err != nil {
		return cstmerr.NewDBConnectionError("gorm.Open failed", err)
	}

	sqlDB, err := ga.db.DB()
	if err != nil {
		return cstmerr.NewDBConnectionError("failed to get underlying sql.DB from GORM", err)
	}
	if ga.config.Driver == "sqlite" {
		// every pooled connection to ":memory:" is a separate database
		sqlDB.SetMaxOpenConns(1)
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		return cstmerr.NewDBConnectionError("failed to ping database after GORM connect", err)
	}
	return nil
}

func (ga *GORMAdapter) Close() error {
	if ga.db != nil {
		sqlDB, _ := ga.db.DB()
		if sqlDB != nil {
			return sqlDB.Close()
		}
	}
	return nil
}

func (ga *GORMAdapter) Ping(ctx context.Context) error {
	if ga.db == nil {
		return cstmerr.NewDBError("database not connected (GORM)", nil)
	}
	sqlDB, _ := ga.db.DB()
	if sqlDB == nil {
		return cstmerr.NewDBError("underlying sql.DB not available for ping (GORM)", nil)
	}
	return sqlDB.PingContext(ctx)
}

func (ga *GORMAdapter) Migrate(ctx context.Context, models ...interface{}) error {
	if ga.db == nil {
		return cstmerr.NewDBError("database not connected (GORM)", nil)
	}
	if err := ga.db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return cstmerr.NewDBQueryError("GORM AutoMigrate failed", err)
	}
	return nil
}

func (ga *GORMAdapter) Save(ctx context.Context, model interface{}) error {
	if ga.db == nil {
		return cstmerr.NewDBError("database not connected (GORM)", nil)
	}
	result := ga.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return cstmerr.NewDBQueryError("GORM Save failed", result.Error)
	}
	return nil
}

func (ga *GORMAdapter) First(ctx context.Context, model interface{}, conditions ...interface{}) error {
	if ga.db == nil {
		return cstmerr.NewDBError("database not connected (GORM)", nil)
	}
	result := ga.db.WithContext(ctx).First(model, conditions...)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return cstmerr.NewDBNotFoundError("GORM First failed, record not found", result.Error)
		}
		return cstmerr.NewDBQueryError("GORM First failed", result.Error)
	}
	return nil
}
