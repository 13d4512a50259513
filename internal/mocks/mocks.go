package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	models "travelbook/internal"
)

type MockTravelRepository struct {
	mock.Mock
}

func (m *MockTravelRepository) GetByTravelID(ctx context.Context, travelID string) (*models.TravelOption, error) {
	args := m.Called(ctx, travelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TravelOption), args.Error(1)
}

func (m *MockTravelRepository) Search(ctx context.Context, filter models.SearchFilter, limit, offset int) ([]models.TravelOption, int, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.TravelOption), args.Int(1), args.Error(2)
}

func (m *MockTravelRepository) CreateTravelOption(ctx context.Context, option *models.TravelOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByBookingID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetBookingsPaginated(ctx context.Context, userID uuid.UUID, scope models.BookingScope, afterCursor string, limit int) ([]models.Booking, string, error) {
	args := m.Called(ctx, userID, scope, afterCursor, limit)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]models.Booking), args.String(1), args.Error(2)
}

func (m *MockBookingRepository) CancelBooking(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) UpsertProfile(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

type MockSearchCache struct {
	mock.Mock
}

func (m *MockSearchCache) GetTravelOptions(ctx context.Context, key string) ([]models.TravelOptionSummary, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TravelOptionSummary), args.Error(1)
}

func (m *MockSearchCache) SetTravelOptions(ctx context.Context, key string, options []models.TravelOptionSummary) error {
	args := m.Called(ctx, key, options)
	return args.Error(0)
}

type MockEventProducer struct {
	mock.Mock
}

func (m *MockEventProducer) Publish(ctx context.Context, key string, event any) error {
	args := m.Called(ctx, key, event)
	return args.Error(0)
}

func (m *MockEventProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
