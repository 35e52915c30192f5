package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/serenity/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mocks github.com/limbo/serenity/internal/repository KVStoreI,AccountsRepositoryI

type KVStoreI interface {
	// Returns value stored under key or errorvalues.ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)
	// Creates or replaces value under key
	Set(ctx context.Context, key, value string) error
	// Writes value only when key is absent, atomically. Reports whether it was written
	SetIfAbsent(ctx context.Context, key, value string) (bool, error)
	// Writes all pairs at once. Backends with transactions apply all or nothing
	SetMany(ctx context.Context, pairs map[string]string) error
	// Removes key. Absent key is not an error
	Remove(ctx context.Context, key string) error
	// Lists keys starting with prefix
	Keys(ctx context.Context, prefix string) ([]string, error)
	// Checks backend availability
	Ping(ctx context.Context) error
}

type AccountsRepositoryI interface {
	// Stores new account. Email must be unused
	Create(ctx context.Context, account *entity.Account) error
	// Looks up account by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	// Looks up account by id. Can be used for authorization middleware
	FindByID(ctx context.Context, id string) (*entity.Account, error)
	// Deletes account with both of its keys
	Delete(ctx context.Context, id string) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

type SqliteCfg struct {
	Path string
}
