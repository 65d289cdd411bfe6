package asset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avelis/ARB-BookingService/internal/domain"
	"github.com/avelis/ARB-BookingService/pkg/dbmetrics"
	"github.com/avelis/ARB-BookingService/pkg/psqlbuilder"
)

// Repository reads organizations, assets and bookable units.
// These records are administrative data maintained elsewhere; the booking
// core only ever reads them.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an asset repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOrganization fetches one organization.
func (r *Repository) GetOrganization(ctx context.Context, id int64) (*domain.Organization, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"slug",
		"exclusive_across_organization",
		"exclusive_across_asset",
		"created_at",
		"updated_at",
	).
		From("organizations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrganization - build select query: %v", ErrBuildQuery, err)
	}

	var org domain.Organization
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&org.ID,
		&org.Name,
		&org.Slug,
		&org.ExclusiveAcrossOrganization,
		&org.ExclusiveAcrossAsset,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrganization - scan organization: %v", ErrScanRow, err)
	}

	org.CreatedAt = createdAt.Time
	org.UpdatedAt = updatedAt.Time
	return &org, nil
}

// GetAsset fetches one asset.
func (r *Repository) GetAsset(ctx context.Context, id int64) (*domain.Asset, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"organization_id",
		"name",
		"slug",
		"description",
		"default_booking_status",
		"slot_duration_minutes",
		"buffer_time_minutes",
		"max_days_ahead",
		"created_at",
		"updated_at",
	).
		From("assets").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAsset - build select query: %v", ErrBuildQuery, err)
	}

	return scanAsset(executor.QueryRowContext(ctx, query, args...))
}

// GetUnit fetches one bookable unit.
func (r *Repository) GetUnit(ctx context.Context, id int64) (*domain.BookableUnit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := unitSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUnit - build select query: %v", ErrBuildQuery, err)
	}

	return scanUnit(executor.QueryRowContext(ctx, query, args...))
}

// ListConcreteUnits lists the asset's units excluding the auto-assign
// placeholder. The availability union for the placeholder iterates these.
func (r *Repository) ListConcreteUnits(ctx context.Context, assetID int64) ([]*domain.BookableUnit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := unitSelect().
		Where(squirrel.Eq{"asset_id": assetID}).
		Where(squirrel.NotEq{"kind": domain.UnitAutoAssign}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConcreteUnits - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConcreteUnits - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	units := make([]*domain.BookableUnit, 0)
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListConcreteUnits - rows error: %v", ErrScanRow, err)
	}

	return units, nil
}

func unitSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"asset_id",
		"name",
		"slug",
		"kind",
		"share_link",
		"calendar_colour",
		"created_at",
		"updated_at",
	).From("bookable_units")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAsset(row rowScanner) (*domain.Asset, error) {
	var asset domain.Asset
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&asset.ID,
		&asset.OrganizationID,
		&asset.Name,
		&asset.Slug,
		&asset.Description,
		&asset.DefaultBookingStatus,
		&asset.SlotDurationMinutes,
		&asset.BufferTimeMinutes,
		&asset.MaxDaysAhead,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanAsset - scan asset: %v", ErrScanRow, err)
	}

	asset.CreatedAt = createdAt.Time
	asset.UpdatedAt = updatedAt.Time
	return &asset, nil
}

func scanUnit(row rowScanner) (*domain.BookableUnit, error) {
	var unit domain.BookableUnit
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&unit.ID,
		&unit.AssetID,
		&unit.Name,
		&unit.Slug,
		&unit.Kind,
		&unit.ShareLink,
		&unit.CalendarColour,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUnitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanUnit - scan unit: %v", ErrScanRow, err)
	}

	unit.CreatedAt = createdAt.Time
	unit.UpdatedAt = updatedAt.Time
	return &unit, nil
}
