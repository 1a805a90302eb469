package extension

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"motel-admin-backend/internal/booking"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Extension, error)
	ListByBooking(ctx context.Context, bookingID string, page, pageSize int) ([]*Extension, int, error)

	// Apply inserts the extension and advances the parent booking's end_time
	// and total_price in one transaction. The parent update is guarded by the
	// booking still being in an extendable status; if it is not,
	// booking.ErrInvalidExtension is returned and nothing is written.
	Apply(ctx context.Context, e *Extension) error

	// AdjustDuration changes an existing extension's duration and cost,
	// applying the hour and cost deltas to the parent booking in the same
	// transaction, under the same extendable-status guard.
	AdjustDuration(ctx context.Context, e *Extension, hoursDelta int, costDelta decimal.Decimal) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Extension, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "room_booking_id", "duration_hours", "additional_cost", "added_at",
	).
		From("public.time_extensions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get extension query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var e Extension
	if err := row.Scan(&e.ID, &e.RoomBookingID, &e.DurationHours, &e.AdditionalCost, &e.AddedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get extension failed: %w", err)
	}
	return &e, nil
}

func (r *pgxRepository) ListByBooking(ctx context.Context, bookingID string, page, pageSize int) ([]*Extension, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "room_booking_id", "duration_hours", "additional_cost", "added_at",
		"count(*) OVER() as total_count",
	).
		From("public.time_extensions").
		Where(squirrel.Eq{"room_booking_id": bookingID}).
		OrderBy("added_at ASC")

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query = query.Limit(uint64(pageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list extensions query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list extensions failed: %w", err)
	}
	defer rows.Close()

	var extensions []*Extension
	var total int

	for rows.Next() {
		var e Extension
		if err := rows.Scan(&e.ID, &e.RoomBookingID, &e.DurationHours, &e.AdditionalCost, &e.AddedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan extension failed: %w", err)
		}
		extensions = append(extensions, &e)
	}

	return extensions, total, nil
}

// advanceParent moves the parent booking's end_time and total_price by the
// given deltas, guarded by the booking still being extendable.
func advanceParent(ctx context.Context, tx pgx.Tx, bookingID string, hoursDelta int, costDelta decimal.Decimal) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.room_bookings").
		Set("end_time", squirrel.Expr("end_time + make_interval(hours => ?)", hoursDelta)).
		Set("total_price", squirrel.Expr("total_price + ?", costDelta)).
		Where(squirrel.Eq{"id": bookingID}).
		Where(squirrel.Eq{"status": booking.ExtendableStatuses()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build advance booking query failed: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("advance booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		// Parent is gone, checked out or cancelled underneath us.
		return booking.ErrInvalidExtension
	}
	return nil
}

func (r *pgxRepository) Apply(ctx context.Context, e *Extension) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin apply extension tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := advanceParent(ctx, tx, e.RoomBookingID, e.DurationHours, e.AdditionalCost); err != nil {
		return err
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.time_extensions").
		Columns("room_booking_id", "duration_hours", "additional_cost").
		Values(e.RoomBookingID, e.DurationHours, e.AdditionalCost).
		Suffix("RETURNING id, added_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create extension query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&e.ID, &e.AddedAt); err != nil {
		return fmt.Errorf("create extension failed: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) AdjustDuration(ctx context.Context, e *Extension, hoursDelta int, costDelta decimal.Decimal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin adjust extension tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := advanceParent(ctx, tx, e.RoomBookingID, hoursDelta, costDelta); err != nil {
		return err
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.time_extensions").
		Set("duration_hours", e.DurationHours).
		Set("additional_cost", e.AdditionalCost).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update extension query failed: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update extension failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}
