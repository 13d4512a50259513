package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	models "travelbook/internal"
	"travelbook/internal/validator"
)

func validCreateRequest() models.CreateTravelOptionRequest {
	return models.CreateTravelOptionRequest{
		TravelID:    "FL1234",
		TravelType:  "flight",
		Source:      "New York",
		Destination: "Boston",
		DepartureAt: time.Now().Add(48 * time.Hour),
		ArrivalAt:   time.Now().Add(50 * time.Hour),
		Price:       "299.99",
		TotalSeats:  50,
	}
}

func TestValidateCreateTravelOptionRequest(t *testing.T) {
	v := validator.NewCustomValidator()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(validCreateRequest()))
	})

	t.Run("unknown travel type", func(t *testing.T) {
		req := validCreateRequest()
		req.TravelType = "boat"
		assert.Error(t, v.Validate(req))
	})

	t.Run("departure in the past", func(t *testing.T) {
		req := validCreateRequest()
		req.DepartureAt = time.Now().Add(-time.Hour)
		assert.Error(t, v.Validate(req))
	})

	t.Run("missing travel id", func(t *testing.T) {
		req := validCreateRequest()
		req.TravelID = ""
		assert.Error(t, v.Validate(req))
	})

	t.Run("zero seats", func(t *testing.T) {
		req := validCreateRequest()
		req.TotalSeats = 0
		assert.Error(t, v.Validate(req))
	})
}

func TestValidateBookingRequest(t *testing.T) {
	v := validator.NewCustomValidator()

	valid := models.BookingRequest{
		TravelID:       "FL1234",
		NumberOfSeats:  2,
		PassengerName:  "Jane Doe",
		PassengerEmail: "jane@example.com",
		PassengerPhone: "+15551234567",
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(valid))
	})

	t.Run("zero seats", func(t *testing.T) {
		req := valid
		req.NumberOfSeats = 0
		assert.Error(t, v.Validate(req))
	})

	t.Run("bad email", func(t *testing.T) {
		req := valid
		req.PassengerEmail = "not-an-email"
		assert.Error(t, v.Validate(req))
	})

	t.Run("bad phone", func(t *testing.T) {
		req := valid
		req.PassengerPhone = "abc"
		assert.Error(t, v.Validate(req))
	})

	t.Run("short name", func(t *testing.T) {
		req := valid
		req.PassengerName = "J"
		assert.Error(t, v.Validate(req))
	})
}

func TestValidateUpdateProfileRequest(t *testing.T) {
	v := validator.NewCustomValidator()

	t.Run("empty request allowed", func(t *testing.T) {
		assert.NoError(t, v.Validate(models.UpdateProfileRequest{}))
	})

	t.Run("valid phone and url", func(t *testing.T) {
		assert.NoError(t, v.Validate(models.UpdateProfileRequest{
			PhoneNumber: "+15551234567",
			PictureURL:  "https://example.com/me.png",
		}))
	})

	t.Run("bad picture url", func(t *testing.T) {
		assert.Error(t, v.Validate(models.UpdateProfileRequest{PictureURL: "::not-a-url"}))
	})

	t.Run("bad phone", func(t *testing.T) {
		assert.Error(t, v.Validate(models.UpdateProfileRequest{PhoneNumber: "abc"}))
	})
}
