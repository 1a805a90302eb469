package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"motel-admin-backend/internal/customer"
)

type Repository interface {
	// Create inserts the booking and its customer snapshots in one transaction.
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// ApplyTransition persists b's status and the timestamp its transition
	// wrote, guarded by `WHERE status = from`. Zero rows affected means a
	// concurrent transition won; ErrConflict is returned and nothing changes.
	ApplyTransition(ctx context.Context, b *Booking, from Status) error

	// UpdateTimes persists a re-quote of the interval (start, end, original
	// end, total price), guarded by the booking still being in StatusBooked.
	UpdateTimes(ctx context.Context, b *Booking) error

	// HasOverlap checks if another non-cancelled booking for the room
	// intersects the given time range. excludeBookingID is used during
	// updates to ignore the booking itself.
	HasOverlap(ctx context.Context, roomCode string, start, end time.Time, excludeBookingID string) (bool, error)

	// HasExtensions reports whether any time extension was applied to the booking.
	HasExtensions(ctx context.Context, bookingID string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = "b.id, b.room_code, r.price_per_hour, b.start_time, b.end_time, " +
	"b.original_end_time, b.status, b.total_price, b.booked_at, " +
	"b.checked_in_at, b.checked_out_at, b.cancelled_at"

func scanBooking(row pgx.Row, extra ...any) (*Booking, error) {
	var b Booking
	dest := []any{
		&b.ID, &b.RoomCode, &b.RoomPricePerHour, &b.StartTime, &b.EndTime,
		&b.OriginalEndTime, &b.Status, &b.TotalPrice, &b.BookedAt,
		&b.CheckedInAt, &b.CheckedOutAt, &b.CancelledAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.room_bookings").
		Columns("room_code", "start_time", "end_time", "original_end_time", "status", "total_price").
		Values(b.RoomCode, b.StartTime, b.EndTime, b.OriginalEndTime, b.Status, b.TotalPrice).
		Suffix("RETURNING id, booked_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.BookedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	for i := range b.Customers {
		cu := &b.Customers[i]
		cu.RoomBookingID = b.ID

		query, args, err := psql.Insert("public.customer_details").
			Columns("room_booking_id", "name", "age", "email", "phone_number", "gender").
			Values(cu.RoomBookingID, cu.Name, cu.Age, cu.Email, cu.PhoneNumber, cu.Gender).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build create customer query failed: %w", err)
		}
		if err := tx.QueryRow(ctx, query, args...).Scan(&cu.ID); err != nil {
			return fmt.Errorf("create booking customer failed: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.room_bookings b").
		Join("public.rooms r ON b.room_code = r.code").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}

	if err := r.attachCustomers(ctx, []*Booking{b}); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingColumns, "count(*) OVER() as total_count").
		From("public.room_bookings b").
		Join("public.rooms r ON b.room_code = r.code")

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.RoomCode != "" {
		query = query.Where(squirrel.Eq{"b.room_code": filter.RoomCode})
	}
	// Date range filtering (intersection logic)
	if filter.StartTime != nil {
		query = query.Where(squirrel.GtOrEq{"b.end_time": filter.StartTime})
	}
	if filter.EndTime != nil {
		query = query.Where(squirrel.LtOrEq{"b.start_time": filter.EndTime})
	}
	if filter.GuestName != "" {
		query = query.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM public.customer_details cd WHERE cd.room_booking_id = b.id AND cd.name ILIKE ?)",
			"%"+filter.GuestName+"%",
		))
	}

	query = query.OrderBy("b.start_time DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		b, err := scanBooking(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}

	if err := r.attachCustomers(ctx, bookings); err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// attachCustomers loads the customer snapshots for all given bookings in one
// query and distributes them onto the parent structs.
func (r *pgxRepository) attachCustomers(ctx context.Context, bookings []*Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	byID := make(map[string]*Booking, len(bookings))
	ids := make([]string, len(bookings))
	for i, b := range bookings {
		b.Customers = []customer.Customer{}
		byID[b.ID] = b
		ids[i] = b.ID
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "room_booking_id", "name", "age", "email", "phone_number", "gender",
	).
		From("public.customer_details").
		Where(squirrel.Eq{"room_booking_id": ids}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("build booking customers query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("load booking customers failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cu customer.Customer
		if err := rows.Scan(&cu.ID, &cu.RoomBookingID, &cu.Name, &cu.Age, &cu.Email, &cu.PhoneNumber, &cu.Gender); err != nil {
			return fmt.Errorf("scan booking customer failed: %w", err)
		}
		if b, ok := byID[cu.RoomBookingID]; ok {
			b.Customers = append(b.Customers, cu)
		}
	}
	return rows.Err()
}

func (r *pgxRepository) ApplyTransition(ctx context.Context, b *Booking, from Status) error {
	column := timestampColumn(b.Status)
	if column == "" {
		return ErrInvalidTransition
	}

	var ts *time.Time
	switch b.Status {
	case StatusCheckedIn:
		ts = b.CheckedInAt
	case StatusCheckedOut:
		ts = b.CheckedOutAt
	case StatusCancelled:
		ts = b.CancelledAt
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.room_bookings").
		Set("status", b.Status).
		Set(column, ts).
		Where(squirrel.Eq{"id": b.ID, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build transition booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("transition booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		// The row is gone or its status moved underneath us.
		return ErrConflict
	}
	return nil
}

func (r *pgxRepository) UpdateTimes(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.room_bookings").
		Set("start_time", b.StartTime).
		Set("end_time", b.EndTime).
		Set("original_end_time", b.OriginalEndTime).
		Set("total_price", b.TotalPrice).
		Where(squirrel.Eq{"id": b.ID, "status": StatusBooked}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking times query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking times failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrConflict
	}
	return nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, roomCode string, start, end time.Time, excludeBookingID string) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.room_bookings").
		Where(squirrel.Eq{"room_code": roomCode}).
		Where(squirrel.NotEq{"status": StatusCancelled}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	if excludeBookingID != "" {
		subQuery = subQuery.Where(squirrel.NotEq{"id": excludeBookingID})
	}

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build check overlap query failed: %w", err)
	}

	query := "SELECT EXISTS (" + sql + ")"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) HasExtensions(ctx context.Context, bookingID string) (bool, error) {
	query := "SELECT EXISTS (SELECT 1 FROM public.time_extensions WHERE room_booking_id = $1)"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, bookingID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check extensions failed: %w", err)
	}
	return exists, nil
}
