package globalconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avelis/ARB-BookingService/internal/domain"
	"github.com/avelis/ARB-BookingService/pkg/dbmetrics"
	"github.com/avelis/ARB-BookingService/pkg/psqlbuilder"
)

// singletonID is the fixed primary key of the one global_config row.
// "Exactly one config" is enforced here with a fixed key and an upsert,
// not with special-cased save logic in the domain.
const singletonID = 1

// Repository persists the global fallback configuration.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a global config repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get fetches the singleton configuration.
func (r *Repository) Get(ctx context.Context) (*domain.GlobalConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"start_time",
		"end_time",
		"slot_duration_minutes",
		"buffer_time_minutes",
		"updated_at",
	).
		From("global_config").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.GlobalConfig
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.StartTime,
		&cfg.EndTime,
		&cfg.SlotDurationMinutes,
		&cfg.BufferTimeMinutes,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	cfg.UpdatedAt = updatedAt.Time
	return &cfg, nil
}

// Save writes the singleton configuration, creating the row on first use.
func (r *Repository) Save(ctx context.Context, cfg *domain.GlobalConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("global_config").
		Columns("id", "start_time", "end_time", "slot_duration_minutes", "buffer_time_minutes").
		Values(singletonID, cfg.StartTime, cfg.EndTime, cfg.SlotDurationMinutes, cfg.BufferTimeMinutes).
		Suffix(`ON CONFLICT (id) DO UPDATE
			SET start_time = EXCLUDED.start_time,
			    end_time = EXCLUDED.end_time,
			    slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			    buffer_time_minutes = EXCLUDED.buffer_time_minutes,
			    updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}
