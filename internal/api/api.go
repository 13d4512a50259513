package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	models "travelbook/internal"
	"travelbook/internal/auth"
	"travelbook/internal/utils"
)

func getApiError(err error) utils.ApiError {
	switch {
	case errors.Is(err, models.ErrTravelOptionNotFound):
		return utils.NewNotFound("travel option not found")
	case errors.Is(err, models.ErrBookingNotFound):
		return utils.NewNotFound("booking not found")
	case errors.Is(err, models.ErrSeatsUnavailable):
		return utils.NewConflict("Not enough seats available.")
	case errors.Is(err, models.ErrNotCancellable):
		return utils.NewConflict("this booking cannot be cancelled")
	case errors.Is(err, models.ErrTravelOptionExists):
		return utils.NewConflict("travel option already exists")
	case errors.Is(err, models.ErrInvalidTravelOption),
		errors.Is(err, models.ErrInvalidCursor),
		errors.Is(err, models.ErrInvalidUUID):
		return utils.NewBadRequest(err.Error())
	case errors.Is(err, models.ErrForbidden):
		return utils.NewForbidden("operation not permitted")
	default:
		log.Error().Err(err).Msg("unhandled service error")
		return utils.NewInternalServerError("internal server error")
	}
}

func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		ae := utils.NewUnauthorized("authentication required")
		utils.RenderResponse(w, ae.StatusCode, ae)
		return uuid.Nil, false
	}
	return userID, true
}

// parseSearchFilter reads the optional filter fields shared by the
// search and public query endpoints. full enables travel_type and
// max_price, which the public query endpoint does not accept.
func parseSearchFilter(r *http.Request, full bool) (models.SearchFilter, error) {
	q := r.URL.Query()
	filter := models.SearchFilter{
		Source:      q.Get("source"),
		Destination: q.Get("destination"),
	}

	if raw := q.Get("departure_date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, errors.New("departure_date must be an ISO date (YYYY-MM-DD)")
		}
		filter.DepartureDate = &date
	}

	if !full {
		return filter, nil
	}

	if raw := q.Get("travel_type"); raw != "" {
		travelType := models.TravelType(raw)
		if !travelType.Valid() {
			return filter, errors.New("travel_type must be one of flight, train, bus")
		}
		filter.TravelType = travelType
	}

	if raw := q.Get("max_price"); raw != "" {
		maxPrice, err := models.ParseCents(raw)
		if err != nil {
			return filter, errors.New("max_price must be a decimal amount")
		}
		filter.MaxPriceCents = &maxPrice
	}

	return filter, nil
}
