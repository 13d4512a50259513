package models

import (
	"time"

	"github.com/google/uuid"
)

type TravelType string

const (
	TravelTypeFlight TravelType = "flight"
	TravelTypeTrain  TravelType = "train"
	TravelTypeBus    TravelType = "bus"
)

// Label returns the human readable form used by the public query API.
func (t TravelType) Label() string {
	switch t {
	case TravelTypeFlight:
		return "Flight"
	case TravelTypeTrain:
		return "Train"
	case TravelTypeBus:
		return "Bus"
	}
	return string(t)
}

func (t TravelType) Valid() bool {
	switch t {
	case TravelTypeFlight, TravelTypeTrain, TravelTypeBus:
		return true
	}
	return false
}

type TravelStatus string

const (
	TravelStatusActive    TravelStatus = "active"
	TravelStatusCancelled TravelStatus = "cancelled"
	TravelStatusCompleted TravelStatus = "completed"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	// StatusPending is part of the persisted enum but no operation
	// currently produces it or transitions out of it.
	StatusPending BookingStatus = "pending"
)

type TravelOption struct {
	ID             uuid.UUID    `json:"-"`
	TravelID       string       `json:"travel_id"`
	TravelType     TravelType   `json:"travel_type"`
	Source         string       `json:"source"`
	Destination    string       `json:"destination"`
	DepartureAt    time.Time    `json:"departure_at"`
	ArrivalAt      time.Time    `json:"arrival_at"`
	PriceCents     Cents        `json:"price"`
	TotalSeats     int          `json:"total_seats"`
	AvailableSeats int          `json:"available_seats"`
	Status         TravelStatus `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type Booking struct {
	ID              uuid.UUID     `json:"-"`
	BookingID       string        `json:"booking_id"`
	UserID          uuid.UUID     `json:"-"`
	TravelOption    TravelOption  `json:"travel_option"`
	NumberOfSeats   int           `json:"number_of_seats"`
	TotalPriceCents Cents         `json:"total_price"`
	Status          BookingStatus `json:"status"`
	PassengerName   string        `json:"passenger_name"`
	PassengerEmail  string        `json:"passenger_email"`
	PassengerPhone  string        `json:"passenger_phone"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// CanCancel reports whether the booking may still be cancelled: it must
// be confirmed and its travel option must depart strictly after today.
func (b *Booking) CanCancel(now time.Time) bool {
	today := now.UTC().Truncate(24 * time.Hour)
	departureDay := b.TravelOption.DepartureAt.UTC().Truncate(24 * time.Hour)
	return b.Status == StatusConfirmed && departureDay.After(today)
}

type UserProfile struct {
	UserID      uuid.UUID  `json:"-"`
	PhoneNumber string     `json:"phone_number"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Address     string     `json:"address"`
	PictureURL  string     `json:"picture_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SearchFilter holds the optional search criteria. Absent fields impose
// no constraint; provided fields combine with logical AND.
type SearchFilter struct {
	Source        string
	Destination   string
	DepartureDate *time.Time
	TravelType    TravelType
	MaxPriceCents *Cents
}

type CreateTravelOptionRequest struct {
	TravelID    string    `json:"travel_id" validate:"required,max=20"`
	TravelType  string    `json:"travel_type" validate:"required,travel_type"`
	Source      string    `json:"source" validate:"required,max=100"`
	Destination string    `json:"destination" validate:"required,max=100"`
	DepartureAt time.Time `json:"departure_at" validate:"required,future_date"`
	ArrivalAt   time.Time `json:"arrival_at" validate:"required"`
	Price       string    `json:"price" validate:"required"`
	TotalSeats  int       `json:"total_seats" validate:"required,min=1"`
}

type BookingRequest struct {
	TravelID       string `json:"travel_id" validate:"required"`
	NumberOfSeats  int    `json:"number_of_seats" validate:"required,min=1"`
	PassengerName  string `json:"passenger_name" validate:"required,min=2,max=100"`
	PassengerEmail string `json:"passenger_email" validate:"required,email"`
	PassengerPhone string `json:"passenger_phone" validate:"required,phone"`
}

type UpdateProfileRequest struct {
	PhoneNumber string     `json:"phone_number" validate:"omitempty,phone"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Address     string     `json:"address" validate:"max=500"`
	PictureURL  string     `json:"picture_url" validate:"omitempty,url"`
}

type BookingScope string

const (
	ScopeAll      BookingScope = ""
	ScopeUpcoming BookingScope = "upcoming"
	ScopePast     BookingScope = "past"
)

type GetBookingsRequest struct {
	Scope  BookingScope
	Cursor string
	Limit  int
}

type AllBookingsResponse struct {
	Bookings []Booking `json:"bookings"`
	Limit    int       `json:"limit"`
	Cursor   string    `json:"cursor"`
}

type SearchTravelOptionsResponse struct {
	TravelOptions []TravelOption `json:"travel_options"`
	Page          int            `json:"page"`
	PageSize      int            `json:"page_size"`
	Total         int            `json:"total"`
}

// TravelOptionSummary is the read-only projection served by the public
// query endpoint.
type TravelOptionSummary struct {
	TravelID       string `json:"travel_id"`
	TravelType     string `json:"travel_type"`
	Source         string `json:"source"`
	Destination    string `json:"destination"`
	DepartureDate  string `json:"departure_date"`
	DepartureTime  string `json:"departure_time"`
	Price          string `json:"price"`
	AvailableSeats int    `json:"available_seats"`
}

func NewTravelOptionSummary(o TravelOption) TravelOptionSummary {
	return TravelOptionSummary{
		TravelID:       o.TravelID,
		TravelType:     o.TravelType.Label(),
		Source:         o.Source,
		Destination:    o.Destination,
		DepartureDate:  o.DepartureAt.UTC().Format("2006-01-02"),
		DepartureTime:  o.DepartureAt.UTC().Format("15:04"),
		Price:          o.PriceCents.String(),
		AvailableSeats: o.AvailableSeats,
	}
}

type QueryTravelOptionsResponse struct {
	TravelOptions []TravelOptionSummary `json:"travel_options"`
}
