package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	models "travelbook/internal"
	"travelbook/internal/events"
	"travelbook/internal/ports"
)

type bookingService struct {
	repo     ports.BookingRepository
	producer ports.EventProducer
}

type BookingServiceOption func(*bookingService)

// WithEventProducer enables lifecycle event publishing. Without it the
// service simply skips publishing.
func WithEventProducer(producer ports.EventProducer) BookingServiceOption {
	return func(s *bookingService) {
		s.producer = producer
	}
}

func NewBookingService(repo ports.BookingRepository, opts ...BookingServiceOption) *bookingService {
	s := &bookingService{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, request *models.BookingRequest) (*models.Booking, error) {
	booking := &models.Booking{
		UserID:         userID,
		TravelOption:   models.TravelOption{TravelID: request.TravelID},
		NumberOfSeats:  request.NumberOfSeats,
		PassengerName:  request.PassengerName,
		PassengerEmail: request.PassengerEmail,
		PassengerPhone: request.PassengerPhone,
	}

	// the reference comes from a fresh uuid; on the unlikely collision
	// with an existing booking we draw once more
	var saved *models.Booking
	for attempt := 0; ; attempt++ {
		booking.BookingID = models.NewBookingRef()
		var err error
		saved, err = s.repo.CreateBooking(ctx, booking)
		if err == nil {
			break
		}
		if errors.Is(err, models.ErrDuplicateBookingRef) && attempt == 0 {
			continue
		}
		return nil, fmt.Errorf("error creating booking: %w", err)
	}

	s.publish(ctx, events.TypeBookingCreated, saved)
	return saved, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*models.Booking, error) {
	booking, err := s.repo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	// a foreign booking looks identical to a missing one
	if booking.UserID != userID {
		return nil, models.ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) AllBookings(ctx context.Context, userID uuid.UUID, req models.GetBookingsRequest) (*models.AllBookingsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	bookings, nextCursor, err := s.repo.GetBookingsPaginated(ctx, userID, req.Scope, req.Cursor, limit)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCursor) {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}
	return &models.AllBookingsResponse{
		Bookings: bookings,
		Limit:    limit,
		Cursor:   nextCursor,
	}, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanCancel(time.Now()) {
		return nil, models.ErrNotCancellable
	}

	if err := s.repo.CancelBooking(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeBookingCancelled, booking)
	return booking, nil
}

func (s *bookingService) publish(ctx context.Context, eventType string, booking *models.Booking) {
	if s.producer == nil {
		return
	}
	event := events.BookingEvent{
		Type:           eventType,
		BookingID:      booking.BookingID,
		TravelID:       booking.TravelOption.TravelID,
		NumberOfSeats:  booking.NumberOfSeats,
		TotalPrice:     booking.TotalPriceCents.String(),
		Status:         string(booking.Status),
		PassengerEmail: booking.PassengerEmail,
		OccurredAt:     time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, booking.BookingID, event); err != nil {
		log.Warn().Err(err).
			Str("booking_id", booking.BookingID).
			Str("type", eventType).
			Msg("failed to publish booking event")
	}
}
