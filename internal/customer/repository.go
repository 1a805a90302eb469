package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, filter Filter) ([]*Customer, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Customer, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "room_booking_id", "name", "age", "email", "phone_number", "gender",
	).
		From("public.customer_details").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get customer query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var cu Customer
	if err := row.Scan(
		&cu.ID, &cu.RoomBookingID, &cu.Name, &cu.Age, &cu.Email, &cu.PhoneNumber, &cu.Gender,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get customer failed: %w", err)
	}
	return &cu, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Customer, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "room_booking_id", "name", "age", "email", "phone_number", "gender",
		"count(*) OVER() as total_count",
	).
		From("public.customer_details")

	if filter.RoomBookingID != "" {
		query = query.Where(squirrel.Eq{"room_booking_id": filter.RoomBookingID})
	}

	query = query.OrderBy("name ASC")

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
		return nil, 0, fmt.Errorf("build list customers query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers failed: %w", err)
	}
	defer rows.Close()

	var customers []*Customer
	var total int

	for rows.Next() {
		var cu Customer
		if err := rows.Scan(
			&cu.ID, &cu.RoomBookingID, &cu.Name, &cu.Age, &cu.Email, &cu.PhoneNumber, &cu.Gender, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan customer failed: %w", err)
		}
		customers = append(customers, &cu)
	}

	return customers, total, nil
}
