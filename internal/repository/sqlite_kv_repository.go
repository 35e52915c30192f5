package repository

import (
	"context"
	"errors"
	"log"
	"time"
	"unicode/utf8"

	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/pkg/cleanup"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type kvEntry struct {
	Key       string `gorm:"column:kv_key;primaryKey"`
	Value     string `gorm:"column:kv_value;not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

type SqliteKVRepository struct {
	db *gorm.DB
}

func NewSqliteKVRepo(cfg *SqliteCfg) *SqliteKVRepository {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatal("opening sqlite for kvRepo error: " + err.Error())
	}
	repo, err := NewSqliteKVRepoWithDB(db)
	if err != nil {
		log.Fatal(err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite",
		F: func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
	return repo
}

func NewSqliteKVRepoWithDB(db *gorm.DB) (*SqliteKVRepository, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, errors.New("migrating kv_entries error: " + err.Error())
	}
	return &SqliteKVRepository{db: db}, nil
}

func (kv *SqliteKVRepository) Get(ctx context.Context, key string) (string, error) {
	var entry kvEntry
	err := kv.db.WithContext(ctx).Where("kv_key = ?", key).Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errorvalues.ErrKeyNotFound
		}
		return "", errors.New("getting value error: " + err.Error())
	}
	return entry.Value, nil
}

func (kv *SqliteKVRepository) Set(ctx context.Context, key, value string) error {
	if err := upsertEntry(kv.db.WithContext(ctx), key, value); err != nil {
		return errors.New("setting value error: " + err.Error())
	}
	return nil
}

func (kv *SqliteKVRepository) SetIfAbsent(ctx context.Context, key, value string) (bool, error) {
	res := kv.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoNothing: true,
	}).Create(&kvEntry{Key: key, Value: value})
	if res.Error != nil {
		return false, errors.New("inserting value error: " + res.Error.Error())
	}
	return res.RowsAffected == 1, nil
}

func (kv *SqliteKVRepository) SetMany(ctx context.Context, pairs map[string]string) error {
	err := kv.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, key := range sortedKeys(pairs) {
			if err := upsertEntry(tx, key, pairs[key]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.New("setting values in transaction error: " + err.Error())
	}
	return nil
}

func (kv *SqliteKVRepository) Remove(ctx context.Context, key string) error {
	err := kv.db.WithContext(ctx).Where("kv_key = ?", key).Delete(&kvEntry{}).Error
	if err != nil {
		return errors.New("removing value error: " + err.Error())
	}
	return nil
}

func (kv *SqliteKVRepository) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)
	// substr keeps the match case-sensitive, LIKE in sqlite is not
	err := kv.db.WithContext(ctx).Model(&kvEntry{}).
		Where("substr(kv_key, 1, ?) = ?", utf8.RuneCountInString(prefix), prefix).
		Order("kv_key").
		Pluck("kv_key", &keys).Error
	if err != nil {
		return nil, errors.New("listing keys error: " + err.Error())
	}
	return keys, nil
}

func (kv *SqliteKVRepository) Ping(ctx context.Context) error {
	sqlDB, err := kv.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func upsertEntry(db *gorm.DB, key, value string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"kv_value", "updated_at"}),
	}).Create(&kvEntry{Key: key, Value: value}).Error
}
