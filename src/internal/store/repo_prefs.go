package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/spride/spride-web/src/internal/model"
	"go.uber.org/zap"
)

func (r *Repositories) GetPreference(ctx context.Context, key string) (model.Preference, error) {
	r.Log.Debug("GetPreference: start", zap.String("key", key))
	var (
		p       model.Preference
		updated int64
	)
	err := r.DB.QueryRowContext(ctx,
		r.rebind(`SELECT pref_key, pref_value, updated_at FROM preferences WHERE pref_key = ?`), key).
		Scan(&p.Key, &p.Value, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Debug("GetPreference: not found", zap.String("key", key))
			return model.Preference{}, model.ErrNotFound
		}
		r.Log.Error("GetPreference: query failed", zap.Error(err))
		return model.Preference{}, err
	}
	p.UpdatedAt = time.UnixMilli(updated).UTC()
	r.Log.Debug("GetPreference: success", zap.String("key", key))
	return p, nil
}

func (r *Repositories) SetPreference(ctx context.Context, key, value string) (model.Preference, error) {
	r.Log.Debug("SetPreference: start", zap.String("key", key), zap.String("value", value))
	now := r.now().UTC().Truncate(time.Millisecond)
	_, err := r.DB.ExecContext(ctx, r.rebind(`
		INSERT INTO preferences (pref_key, pref_value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (pref_key) DO UPDATE SET pref_value = excluded.pref_value, updated_at = excluded.updated_at`),
		key, value, now.UnixMilli())
	if err != nil {
		r.Log.Error("SetPreference: upsert failed", zap.Error(err))
		return model.Preference{}, err
	}
	r.Log.Info("SetPreference: success", zap.String("key", key), zap.String("value", value))
	return model.Preference{Key: key, Value: value, UpdatedAt: now}, nil
}
