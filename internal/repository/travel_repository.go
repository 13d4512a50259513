package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	models "travelbook/internal"
)

// DBConn is the subset of pgxpool.Pool the repositories rely on, kept
// narrow so pgxmock can stand in during tests.
type DBConn interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

const travelOptionColumns = `id, travel_id, travel_type, source, destination, departure_at, arrival_at, price_cents, total_seats, available_seats, status, created_at, updated_at`

type TravelRepository struct {
	db DBConn
}

func NewTravelRepository(db DBConn) *TravelRepository {
	return &TravelRepository{db: db}
}

// GetByTravelID looks up an option by its external identifier. Unlike
// Search it does not restrict on status or departure date, so past and
// cancelled options stay retrievable for historical display.
func (r *TravelRepository) GetByTravelID(ctx context.Context, travelID string) (*models.TravelOption, error) {
	query := `SELECT ` + travelOptionColumns + ` FROM travel_options WHERE travel_id = $1`
	var option models.TravelOption
	err := scanTravelOption(r.db.QueryRow(ctx, query, travelID), &option)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrTravelOptionNotFound
		}
		return nil, err
	}
	return &option, nil
}

// Search returns active, future-dated options matching the filter,
// ordered by departure, plus the total match count for pagination.
func (r *TravelRepository) Search(ctx context.Context, filter models.SearchFilter, limit, offset int) ([]models.TravelOption, int, error) {
	conditions := []string{"status = 'active'", "departure_at >= CURRENT_DATE"}
	var args []interface{}

	addCondition := func(format string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if filter.Source != "" {
		addCondition("source ILIKE $%d", "%"+filter.Source+"%")
	}
	if filter.Destination != "" {
		addCondition("destination ILIKE $%d", "%"+filter.Destination+"%")
	}
	if filter.DepartureDate != nil {
		addCondition("departure_at::date = $%d", filter.DepartureDate.UTC().Format("2006-01-02"))
	}
	if filter.TravelType != "" {
		addCondition("travel_type = $%d", string(filter.TravelType))
	}
	if filter.MaxPriceCents != nil {
		addCondition("price_cents <= $%d", int64(*filter.MaxPriceCents))
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM travel_options` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + travelOptionColumns + ` FROM travel_options` + where +
		fmt.Sprintf(" ORDER BY departure_at, travel_id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	options := make([]models.TravelOption, 0)
	for rows.Next() {
		var option models.TravelOption
		if err := scanTravelOption(rows, &option); err != nil {
			return nil, 0, err
		}
		options = append(options, option)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return options, total, nil
}

func (r *TravelRepository) CreateTravelOption(ctx context.Context, option *models.TravelOption) error {
	query := `
        INSERT INTO travel_options (id, travel_id, travel_type, source, destination, departure_at, arrival_at, price_cents, total_seats, available_seats, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		option.ID, option.TravelID, option.TravelType, option.Source, option.Destination,
		option.DepartureAt, option.ArrivalAt, int64(option.PriceCents),
		option.TotalSeats, option.AvailableSeats, option.Status,
	).Scan(&option.CreatedAt, &option.UpdatedAt)
	if isUniqueViolation(err) {
		return models.ErrTravelOptionExists
	}
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTravelOption(row rowScanner, o *models.TravelOption) error {
	return row.Scan(
		&o.ID, &o.TravelID, &o.TravelType, &o.Source, &o.Destination,
		&o.DepartureAt, &o.ArrivalAt, &o.PriceCents,
		&o.TotalSeats, &o.AvailableSeats, &o.Status,
		&o.CreatedAt, &o.UpdatedAt,
	)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
