package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/claraboia/jcreader/internal/datasources"
)

var (
	_ datasources.KeyValueStore = (*LocalStorage)(nil)
	_ datasources.KeyLister     = (*LocalStorage)(nil)
)

// LocalStorage is the local-cache tier: plain key/value rows with no expiry.
type LocalStorage struct {
	db *DB
}

func NewLocalStorage(db *DB) *LocalStorage {
	return &LocalStorage{db: db}
}

func (s *LocalStorage) GetValue(ctx context.Context, key string) (string, bool, error) {
	sb := s.db.Flavor.NewSelectBuilder()
	sb.Select("stored_value").From(localStorageTable).Where(sb.Equal("storage_key", key))

	query, args := sb.Build()
	var value string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading local value [%s]: %w", key, err)
	}
	return value, true, nil
}

func (s *LocalStorage) SetValue(ctx context.Context, key, value string) error {
	ib := s.db.Flavor.NewInsertBuilder()
	ib.ReplaceInto(localStorageTable).Cols("storage_key", "stored_value").Values(key, value)

	query, args := ib.Build()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("writing local value [%s]: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) DeleteValue(ctx context.Context, key string) error {
	del := s.db.Flavor.NewDeleteBuilder()
	del.DeleteFrom(localStorageTable).Where(del.Equal("storage_key", key))

	query, args := del.Build()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting local value [%s]: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) ListKeys(ctx context.Context) ([]string, error) {
	sb := s.db.Flavor.NewSelectBuilder()
	sb.Select("storage_key").From(localStorageTable).OrderBy("storage_key")

	query, args := sb.Build()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing local keys: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scanning local key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating local keys: %w", err)
	}
	return keys, nil
}
