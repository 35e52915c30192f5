package repository

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/pkg/cleanup"
	"github.com/redis/go-redis/v9"
)

const redisScanBatch = 100

type RedisKVRepository struct {
	rdb *redis.Client
}

func NewRedisKVRepo(cfg *RedisCfg) *RedisKVRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("error while pinging redis for kvRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    rdb.Close,
	})
	return &RedisKVRepository{rdb: rdb}
}

func NewRedisKVRepoWithClient(rdb *redis.Client) *RedisKVRepository {
	return &RedisKVRepository{rdb: rdb}
}

func (kv *RedisKVRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := kv.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errorvalues.ErrKeyNotFound
		}
		return "", errors.New("getting value error: " + err.Error())
	}
	return value, nil
}

func (kv *RedisKVRepository) Set(ctx context.Context, key, value string) error {
	if err := kv.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.New("setting value error: " + err.Error())
	}
	return nil
}

func (kv *RedisKVRepository) SetIfAbsent(ctx context.Context, key, value string) (bool, error) {
	created, err := kv.rdb.SetNX(ctx, key, value, 0).Result()
	if err != nil {
		return false, errors.New("inserting value error: " + err.Error())
	}
	return created, nil
}

func (kv *RedisKVRepository) SetMany(ctx context.Context, pairs map[string]string) error {
	_, err := kv.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range sortedKeys(pairs) {
			pipe.Set(ctx, key, pairs[key], 0)
		}
		return nil
	})
	if err != nil {
		return errors.New("setting values in transaction error: " + err.Error())
	}
	return nil
}

func (kv *RedisKVRepository) Remove(ctx context.Context, key string) error {
	if err := kv.rdb.Del(ctx, key).Err(); err != nil {
		return errors.New("removing value error: " + err.Error())
	}
	return nil
}

func (kv *RedisKVRepository) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)
	iter := kv.rdb.Scan(ctx, 0, escapeGlob(prefix)+"*", redisScanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.New("scanning keys error: " + err.Error())
	}
	sort.Strings(keys)
	return keys, nil
}

func (kv *RedisKVRepository) Ping(ctx context.Context) error {
	return kv.rdb.Ping(ctx).Err()
}

func escapeGlob(s string) string {
	return strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`).Replace(s)
}
