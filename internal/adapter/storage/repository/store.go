package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ordermodule/internal/adapter/storage"
	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

type StoreRepository struct {
	db *storage.DB
}

func NewStoreRepository(db *storage.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) GetByID(ctx context.Context, storeID string) (*domain.Store, error) {
	sql, args, err := r.db.QueryBuilder.
		Select("id", "name").
		From("stores").
		Where(sq.Eq{"id": storeID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	store := domain.Store{Settings: map[string]string{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&store.ID, &store.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	sql, args, err = r.db.QueryBuilder.
		Select("name", "value").
		From("store_settings").
		Where(sq.Eq{"store_id": storeID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		store.Settings[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &store, nil
}

// SaveSetting creates the store when needed and upserts one setting.
func (r *StoreRepository) SaveSetting(ctx context.Context, store *domain.Store, name, value string) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql, args, err := r.db.QueryBuilder.
			Insert("stores").
			Columns("id", "name").
			Values(store.ID, store.Name).
			Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name").
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		sql, args, err = r.db.QueryBuilder.
			Insert("store_settings").
			Columns("store_id", "name", "value").
			Values(store.ID, name, value).
			Suffix("ON CONFLICT (store_id, name) DO UPDATE SET value = EXCLUDED.value").
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
}
