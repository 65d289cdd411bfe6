package booking

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

// bookingColumns is the aliased column set shared by every select.
var bookingColumns = []string{
	"b.id",
	"b.user_id",
	"b.bookable_unit_id",
	"b.booking_date",
	"b.start_time",
	"b.end_time",
	"b.status",
	"b.token",
	"b.notes",
	"b.created_at",
	"b.updated_at",
}

// Repository persists bookings and their participants.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a booking together with its participant rows.
// When the context carries a transaction, every statement runs inside it.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"bookable_unit_id",
			"booking_date",
			"start_time",
			"end_time",
			"status",
			"token",
			"notes",
		).
		Values(
			booking.UserID,
			booking.BookableUnitID,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.Token,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	for _, userID := range booking.ParticipantIDs {
		if err := r.AddParticipant(ctx, booking.ID, userID); err != nil {
			return nil, err
		}
	}

	return booking, nil
}

// Update rewrites the mutable fields of a booking on the edit path.
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("bookable_unit_id", booking.BookableUnitID).
		Set("booking_date", booking.Date).
		Set("start_time", booking.StartTime).
		Set("end_time", booking.EndTime).
		Set("status", booking.Status).
		Set("notes", booking.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// GetByID fetches one booking with its participants.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"b.id": id})
}

// GetByToken fetches one booking by its opaque link token.
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"b.token": token})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	participants, err := r.GetParticipants(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.ParticipantIDs = participants

	return booking, nil
}

// GetByUserID lists a user's bookings, newest first, optionally filtered
// by status.
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.booking_date DESC", "b.start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByAssetWithFilter lists an asset's bookings for the admin screens,
// ordered by (date, start_time) as the calendar renders them.
func (r *Repository) GetByAssetWithFilter(ctx context.Context, filter domain.AssetBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("bookable_units u ON u.id = b.bookable_unit_id").
		Where(squirrel.Eq{"u.asset_id": filter.AssetID}).
		OrderBy("b.booking_date ASC", "b.start_time ASC")

	if filter.BookableUnitID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.bookable_unit_id": *filter.BookableUnitID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"b.booking_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.status": terminalStatusStrings()})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAssetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAssetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetOverlapping returns the non-terminal bookings occupying any part of
// [filter.StartTime, filter.EndTime) on the date, for the requested
// conflict scope. Interval comparison is strict half-open, so a booking
// ending exactly at filter.StartTime does not count.
//
// Inside a transaction the rows are locked with FOR UPDATE; the admission
// engine relies on this together with serializable isolation to keep two
// concurrent admissions from both seeing the slot free.
func (r *Repository) GetOverlapping(ctx context.Context, filter domain.OverlapFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.booking_date": filter.Date}).
		Where(squirrel.Lt{"b.start_time": filter.EndTime}).
		Where(squirrel.Gt{"b.end_time": filter.StartTime}).
		Where(squirrel.NotEq{"b.status": terminalStatusStrings()}).
		OrderBy("b.start_time ASC")

	switch filter.Scope {
	case domain.ScopeOrganization:
		selectBuilder = selectBuilder.
			Join("bookable_units u ON u.id = b.bookable_unit_id").
			Join("assets a ON a.id = u.asset_id").
			Where(squirrel.Eq{"a.organization_id": filter.OrganizationID})
	case domain.ScopeAsset:
		selectBuilder = selectBuilder.
			Join("bookable_units u ON u.id = b.bookable_unit_id").
			Where(squirrel.Eq{"u.asset_id": filter.AssetID})
	default:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.bookable_unit_id": filter.BookableUnitID})
	}

	if filter.ExcludeBookingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.id": *filter.ExcludeBookingID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// HasAcceptedInDateRange reports whether the asset has accepted bookings on
// any date in [startDate, endDate]. Used by blackout validation.
func (r *Repository) HasAcceptedInDateRange(ctx context.Context, assetID int64, startDate, endDate time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings b").
		Join("bookable_units u ON u.id = b.bookable_unit_id").
		Where(squirrel.Eq{"u.asset_id": assetID}).
		Where(squirrel.Eq{"b.status": domain.StatusAccepted}).
		Where(squirrel.GtOrEq{"b.booking_date": startDate}).
		Where(squirrel.LtOrEq{"b.booking_date": endDate}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasAcceptedInDateRange - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasAcceptedInDateRange - scan: %v", ErrScanRow, err)
	}
	return true, nil
}

// UpdateStatus sets a booking's status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// AddParticipant attaches a user to a booking. Adding twice is a no-op.
func (r *Repository) AddParticipant(ctx context.Context, bookingID, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_participants").
		Columns("booking_id", "user_id").
		Values(bookingID, userID).
		Suffix("ON CONFLICT (booking_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddParticipant - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddParticipant - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// RemoveParticipant detaches a user from a booking.
func (r *Repository) RemoveParticipant(ctx context.Context, bookingID, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_participants").
		Where(squirrel.Eq{"booking_id": bookingID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveParticipant - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveParticipant - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveParticipant - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrNotParticipant
	}
	return nil
}

// GetParticipants lists the user ids attached to a booking.
func (r *Repository) GetParticipants(ctx context.Context, bookingID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id").
		From("booking_participants").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("user_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetParticipants - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetParticipants - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	userIDs := make([]int64, 0)
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("%w: GetParticipants - scan user_id: %v", ErrScanRow, err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetParticipants - rows error: %v", ErrScanRow, err)
	}

	return userIDs, nil
}

func terminalStatusStrings() []string {
	out := make([]string, len(domain.TerminalStatuses))
	for i, s := range domain.TerminalStatuses {
		out[i] = string(s)
	}
	return out
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.BookableUnitID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.Token,
		&booking.Notes,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking - scan row: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}
