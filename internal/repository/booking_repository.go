package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	models "travelbook/internal"
	"travelbook/internal/utils"
)

const bookingJoinColumns = `
            B.id, B.booking_id, B.user_id, B.number_of_seats, B.total_price_cents, B.status,
            B.passenger_name, B.passenger_email, B.passenger_phone, B.created_at, B.updated_at,
            T.id, T.travel_id, T.travel_type, T.source, T.destination, T.departure_at, T.arrival_at,
            T.price_cents, T.total_seats, T.available_seats, T.status, T.created_at, T.updated_at`

type BookingRepository struct {
	db DBConn
}

func NewBookingRepository(db DBConn) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateBooking reserves seats and records the booking in a single
// transaction. The seat decrement is a conditional update so two
// concurrent requests can never oversell: the row only changes when
// enough seats remain, and a zero-row result is disambiguated into
// ErrTravelOptionNotFound or ErrSeatsUnavailable without mutating
// anything.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := r.reserveSeatsTx(ctx, tx, booking); err != nil {
		return nil, err
	}

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	booking.Status = models.StatusConfirmed
	booking.TotalPriceCents = booking.TravelOption.PriceCents * models.Cents(booking.NumberOfSeats)

	if err := r.createBookingTx(ctx, tx, booking); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *BookingRepository) reserveSeatsTx(ctx context.Context, tx pgx.Tx, booking *models.Booking) error {
	query := `
        UPDATE travel_options
        SET available_seats = available_seats - $2, updated_at = now()
        WHERE travel_id = $1 AND status = 'active' AND departure_at >= CURRENT_DATE AND available_seats >= $2
        RETURNING ` + travelOptionColumns

	err := scanTravelOption(tx.QueryRow(ctx, query, booking.TravelOption.TravelID, booking.NumberOfSeats), &booking.TravelOption)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	// nothing matched: distinguish a missing or unbookable option from a
	// genuine seat shortfall, using the same date predicate the update
	// ran against so the database clock decides both
	var status models.TravelStatus
	var bookable bool
	err = tx.QueryRow(ctx,
		`SELECT status, departure_at >= CURRENT_DATE FROM travel_options WHERE travel_id = $1`,
		booking.TravelOption.TravelID,
	).Scan(&status, &bookable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrTravelOptionNotFound
		}
		return err
	}
	if status != models.TravelStatusActive || !bookable {
		return models.ErrTravelOptionNotFound
	}
	return models.ErrSeatsUnavailable
}

func (r *BookingRepository) createBookingTx(ctx context.Context, tx pgx.Tx, booking *models.Booking) error {
	query := `
        INSERT INTO bookings (id, booking_id, user_id, travel_option_id, number_of_seats, total_price_cents, status, passenger_name, passenger_email, passenger_phone)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING created_at, updated_at
    `
	err := tx.QueryRow(ctx, query,
		booking.ID, booking.BookingID, booking.UserID, booking.TravelOption.ID,
		booking.NumberOfSeats, int64(booking.TotalPriceCents), booking.Status,
		booking.PassengerName, booking.PassengerEmail, booking.PassengerPhone,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if isUniqueViolation(err) {
		return models.ErrDuplicateBookingRef
	}
	return err
}

func (r *BookingRepository) GetByBookingID(ctx context.Context, bookingID string) (*models.Booking, error) {
	query := `
        SELECT ` + bookingJoinColumns + `
        FROM bookings B
        JOIN travel_options T ON T.id = B.travel_option_id
        WHERE B.booking_id = $1
    `
	var booking models.Booking
	err := scanBooking(r.db.QueryRow(ctx, query, bookingID), &booking)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// GetBookingsPaginated lists a user's bookings newest first using a
// keyset cursor on (created_at, id).
func (r *BookingRepository) GetBookingsPaginated(ctx context.Context, userID uuid.UUID, scope models.BookingScope, afterCursor string, limit int) ([]models.Booking, string, error) {
	query := `
        SELECT ` + bookingJoinColumns + `
        FROM bookings B
        JOIN travel_options T ON T.id = B.travel_option_id
    `
	args := []interface{}{userID}
	conditions := []string{"B.user_id = $1"}

	switch scope {
	case models.ScopeUpcoming:
		conditions = append(conditions, "T.departure_at >= CURRENT_DATE", "B.status = 'confirmed'")
	case models.ScopePast:
		conditions = append(conditions, "T.departure_at < CURRENT_DATE")
	}

	if afterCursor != "" {
		afterTime, afterUUID, err := utils.DecodeCursor(afterCursor)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", models.ErrInvalidCursor, err)
		}
		conditions = append(conditions, fmt.Sprintf("(B.created_at, B.id) < ($%d, $%d)", len(args)+1, len(args)+2))
		args = append(args, afterTime, afterUUID)
	}

	query += " WHERE " + strings.Join(conditions, " AND ")
	query += " ORDER BY B.created_at DESC, B.id DESC"
	query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	var bookings []models.Booking
	var lastBooking models.Booking
	for rows.Next() {
		var booking models.Booking
		if err := scanBooking(rows, &booking); err != nil {
			return nil, "", err
		}
		bookings = append(bookings, booking)
		lastBooking = booking
	}
	if err = rows.Err(); err != nil {
		return nil, "", err
	}

	var nextCursor string
	if len(bookings) == limit {
		nextCursor = utils.EncodeCursor(lastBooking.CreatedAt, lastBooking.ID)
	}
	return bookings, nextCursor, nil
}

// CancelBooking flips a confirmed booking to cancelled and restores its
// seats to the travel option. Both writes commit together; the status
// condition on the first update makes a concurrent double-cancel a
// no-op failure instead of a double seat refund.
func (r *BookingRepository) CancelBooking(ctx context.Context, booking *models.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx,
		`UPDATE bookings SET status = 'cancelled', updated_at = now() WHERE id = $1 AND status = 'confirmed'`,
		booking.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return models.ErrNotCancellable
	}

	_, err = tx.Exec(ctx,
		`UPDATE travel_options SET available_seats = available_seats + $2, updated_at = now() WHERE id = $1`,
		booking.TravelOption.ID, booking.NumberOfSeats,
	)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	booking.Status = models.StatusCancelled
	booking.TravelOption.AvailableSeats += booking.NumberOfSeats
	return nil
}

func scanBooking(row rowScanner, b *models.Booking) error {
	return row.Scan(
		&b.ID, &b.BookingID, &b.UserID, &b.NumberOfSeats, &b.TotalPriceCents, &b.Status,
		&b.PassengerName, &b.PassengerEmail, &b.PassengerPhone, &b.CreatedAt, &b.UpdatedAt,
		&b.TravelOption.ID, &b.TravelOption.TravelID, &b.TravelOption.TravelType,
		&b.TravelOption.Source, &b.TravelOption.Destination,
		&b.TravelOption.DepartureAt, &b.TravelOption.ArrivalAt,
		&b.TravelOption.PriceCents, &b.TravelOption.TotalSeats, &b.TravelOption.AvailableSeats,
		&b.TravelOption.Status, &b.TravelOption.CreatedAt, &b.TravelOption.UpdatedAt,
	)
}
