package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/pkg/cleanup"
)

const (
	pgGetQuery    = `SELECT value FROM kv_store WHERE key = $1;`
	pgUpsertQuery = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW()) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`
	pgInsertQuery = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW()) ON CONFLICT (key) DO NOTHING;`
	pgDeleteQuery = `DELETE FROM kv_store WHERE key = $1;`
	pgKeysQuery   = `SELECT key FROM kv_store WHERE key LIKE $1 ORDER BY key;`
)

type PgKVRepository struct {
	conn PgConnection
}

func NewPgKVRepo(cfg DBConfig) *PgKVRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for kvRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for kvRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PgKVRepository{
		conn: pool,
	}
}

func NewPgKVRepoWithConn(conn PgConnection) *PgKVRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for kvRepo: " + err.Error())
	}
	return &PgKVRepository{
		conn: conn,
	}
}

func (kv *PgKVRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	row := kv.conn.QueryRow(ctx, pgGetQuery, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errorvalues.ErrKeyNotFound
		}
		return "", errors.New("getting value error: " + err.Error())
	}
	return value, nil
}

func (kv *PgKVRepository) Set(ctx context.Context, key, value string) error {
	_, err := kv.conn.Exec(ctx, pgUpsertQuery, key, value)
	if err != nil {
		return errors.New("setting value error: " + err.Error())
	}
	return nil
}

func (kv *PgKVRepository) SetIfAbsent(ctx context.Context, key, value string) (bool, error) {
	tag, err := kv.conn.Exec(ctx, pgInsertQuery, key, value)
	if err != nil {
		return false, errors.New("inserting value error: " + err.Error())
	}
	return tag.RowsAffected() == 1, nil
}

func (kv *PgKVRepository) SetMany(ctx context.Context, pairs map[string]string) error {
	tx, err := kv.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	for _, key := range sortedKeys(pairs) {
		if _, err = tx.Exec(ctx, pgUpsertQuery, key, pairs[key]); err != nil {
			return errors.New("setting value in transaction error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing transaction error: " + err.Error())
	}
	return nil
}

func (kv *PgKVRepository) Remove(ctx context.Context, key string) error {
	_, err := kv.conn.Exec(ctx, pgDeleteQuery, key)
	if err != nil {
		return errors.New("removing value error: " + err.Error())
	}
	return nil
}

func (kv *PgKVRepository) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := kv.conn.Query(ctx, pgKeysQuery, escapeLike(prefix)+"%")
	if err != nil {
		return nil, errors.New("listing keys error: " + err.Error())
	}
	defer rows.Close()
	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, errors.New("key row parsing error: " + err.Error())
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected key rows error: " + err.Error())
	}
	return keys, nil
}

func (kv *PgKVRepository) Ping(ctx context.Context) error {
	return kv.conn.Ping(ctx)
}
