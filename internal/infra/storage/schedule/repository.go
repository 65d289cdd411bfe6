package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avelis/ARB-BookingService/internal/domain"
	"github.com/avelis/ARB-BookingService/pkg/dbmetrics"
	"github.com/avelis/ARB-BookingService/pkg/psqlbuilder"
)

// Repository persists the weekly working-hours template and blackout
// periods. Working-hours rows are never deleted: the weekly template is a
// historical record, days are switched off via is_active.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a schedule repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveWorkingHours fetches the active weekly record for the asset and
// weekday, or ErrWorkingHoursNotFound when the day is switched off or has
// no record.
func (r *Repository) GetActiveWorkingHours(ctx context.Context, assetID int64, weekday time.Weekday) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := workingHoursSelect().
		Where(squirrel.Eq{"asset_id": assetID, "weekday": int(weekday), "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	return scanWorkingHours(executor.QueryRowContext(ctx, query, args...))
}

// ListWorkingHours lists the asset's full weekly template including
// inactive days.
func (r *Repository) ListWorkingHours(ctx context.Context, assetID int64) ([]*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := workingHoursSelect().
		Where(squirrel.Eq{"asset_id": assetID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.WorkingHours, 0)
	for rows.Next() {
		wh, err := scanWorkingHours(rows)
		if err != nil {
			return nil, err
		}
		hours = append(hours, wh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// UpsertWorkingHours writes the weekly record for (asset, weekday).
// The unique constraint keeps one record per weekday; existing records are
// overwritten in place, never replaced.
func (r *Repository) UpsertWorkingHours(ctx context.Context, wh *domain.WorkingHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns("asset_id", "weekday", "start_time", "end_time", "is_active").
		Values(wh.AssetID, int(wh.Weekday), wh.StartTime, wh.EndTime, wh.IsActive).
		Suffix(`ON CONFLICT (asset_id, weekday) DO UPDATE
			SET start_time = EXCLUDED.start_time,
			    end_time = EXCLUDED.end_time,
			    is_active = EXCLUDED.is_active,
			    updated_at = NOW()
			RETURNING id`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertWorkingHours - build upsert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&wh.ID); err != nil {
		return fmt.Errorf("%w: UpsertWorkingHours - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// HasBlackout reports whether the date falls inside any blackout period of
// the asset. Bounds are inclusive on both ends.
func (r *Repository) HasBlackout(ctx context.Context, assetID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("blackout_periods").
		Where(squirrel.Eq{"asset_id": assetID}).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasBlackout - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasBlackout - scan: %v", ErrScanRow, err)
	}
	return true, nil
}

// CreateBlackout inserts a blackout period.
func (r *Repository) CreateBlackout(ctx context.Context, period *domain.BlackoutPeriod) (*domain.BlackoutPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blackout_periods").
		Columns("asset_id", "start_date", "end_date", "description").
		Values(period.AssetID, period.StartDate, period.EndDate, period.Description).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlackout - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&period.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlackout - execute insert: %v", ErrExecQuery, err)
	}

	period.CreatedAt = createdAt.Time
	period.UpdatedAt = updatedAt.Time
	return period, nil
}

// GetBlackout fetches one blackout period.
func (r *Repository) GetBlackout(ctx context.Context, id int64) (*domain.BlackoutPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"asset_id",
		"start_date",
		"end_date",
		"description",
		"created_at",
		"updated_at",
	).
		From("blackout_periods").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlackout - build select query: %v", ErrBuildQuery, err)
	}

	var period domain.BlackoutPeriod
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&period.ID,
		&period.AssetID,
		&period.StartDate,
		&period.EndDate,
		&period.Description,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBlackoutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlackout - scan blackout: %v", ErrScanRow, err)
	}

	period.CreatedAt = createdAt.Time
	period.UpdatedAt = updatedAt.Time
	return &period, nil
}

// UpdateBlackout rewrites a blackout period's range and description.
func (r *Repository) UpdateBlackout(ctx context.Context, period *domain.BlackoutPeriod) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("blackout_periods").
		Set("start_date", period.StartDate).
		Set("end_date", period.EndDate).
		Set("description", period.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": period.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateBlackout - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateBlackout - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateBlackout - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlackoutNotFound
	}
	return nil
}

func workingHoursSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"asset_id",
		"weekday",
		"start_time",
		"end_time",
		"is_active",
		"created_at",
		"updated_at",
	).From("working_hours")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkingHours(row rowScanner) (*domain.WorkingHours, error) {
	var wh domain.WorkingHours
	var weekday int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&wh.ID,
		&wh.AssetID,
		&weekday,
		&wh.StartTime,
		&wh.EndTime,
		&wh.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanWorkingHours - scan row: %v", ErrScanRow, err)
	}

	wh.Weekday = time.Weekday(weekday)
	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time
	return &wh, nil
}
