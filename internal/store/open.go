package store

import (
	"context"
	"fmt"
)

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
	DriverRedis  = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Driver string

	// DSN is the SQLite path or MySQL DSN. An empty SQLite DSN means
	// DefaultDBPath.
	DSN string

	RedisAddr     string
	RedisPassword string
}

// Open returns the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case "", DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		dsn := opts.DSN
		if dsn == "" {
			p, err := DefaultDBPath()
			if err != nil {
				return nil, err
			}
			dsn = p
		}
		return OpenSQLite(ctx, dsn)
	case DriverMySQL:
		if opts.DSN == "" {
			return nil, fmt.Errorf("mysql store requires a DSN")
		}
		return OpenMySQL(ctx, opts.DSN)
	case DriverRedis:
		return OpenRedis(ctx, opts.RedisAddr, opts.RedisPassword)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}
}
