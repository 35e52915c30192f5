package repository

import (
	"fmt"

	errorvalues "github.com/limbo/serenity/internal/error_values"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverSqlite   = "sqlite"
)

type StoreOptions struct {
	Driver   string
	Postgres PGCfg
	Redis    RedisCfg
	Sqlite   SqliteCfg
}

// NewStore opens the backend selected by opts.Driver. Connection failures are fatal,
// the same way the repositories behave when constructed directly.
func NewStore(opts *StoreOptions) (KVStoreI, error) {
	switch opts.Driver {
	case DriverMemory, "":
		return NewMemoryKV(), nil
	case DriverPostgres:
		return NewPgKVRepo(&opts.Postgres), nil
	case DriverRedis:
		return NewRedisKVRepo(&opts.Redis), nil
	case DriverSqlite:
		return NewSqliteKVRepo(&opts.Sqlite), nil
	}
	return nil, fmt.Errorf("%w: %q", errorvalues.ErrUnknownStorageDriver, opts.Driver)
}
