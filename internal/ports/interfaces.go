package ports

import (
	"context"

	"github.com/google/uuid"

	models "travelbook/internal"
)

type TravelRepository interface {
	GetByTravelID(ctx context.Context, travelID string) (*models.TravelOption, error)
	Search(ctx context.Context, filter models.SearchFilter, limit, offset int) ([]models.TravelOption, int, error)
	CreateTravelOption(ctx context.Context, option *models.TravelOption) error
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetByBookingID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetBookingsPaginated(ctx context.Context, userID uuid.UUID, scope models.BookingScope, afterCursor string, limit int) ([]models.Booking, string, error)
	CancelBooking(ctx context.Context, booking *models.Booking) error
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpsertProfile(ctx context.Context, profile *models.UserProfile) error
}

type TravelService interface {
	GetTravelOption(ctx context.Context, travelID string) (*models.TravelOption, error)
	SearchTravelOptions(ctx context.Context, filter models.SearchFilter, page int) (*models.SearchTravelOptionsResponse, error)
	FeaturedTravelOptions(ctx context.Context) ([]models.TravelOption, error)
	QueryTravelOptions(ctx context.Context, filter models.SearchFilter) (*models.QueryTravelOptionsResponse, error)
	CreateTravelOption(ctx context.Context, request *models.CreateTravelOptionRequest) (*models.TravelOption, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, request *models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*models.Booking, error)
	AllBookings(ctx context.Context, userID uuid.UUID, req models.GetBookingsRequest) (*models.AllBookingsResponse, error)
	CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*models.Booking, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, request *models.UpdateProfileRequest) (*models.UserProfile, error)
}

// SearchCache caches public query projections keyed by their filter.
type SearchCache interface {
	GetTravelOptions(ctx context.Context, key string) ([]models.TravelOptionSummary, error)
	SetTravelOptions(ctx context.Context, key string, options []models.TravelOptionSummary) error
}

// EventProducer publishes booking lifecycle events. Implementations are
// best effort; callers must not fail the request on publish errors.
type EventProducer interface {
	Publish(ctx context.Context, key string, event any) error
	Close() error
}
