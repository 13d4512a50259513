package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	models "travelbook/internal"
	"travelbook/internal/ports"
	"travelbook/internal/utils"
	"travelbook/internal/validator"
)

func CreateBooking(service ports.BookingService) http.HandlerFunc {
	v := validator.NewCustomValidator()
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var request models.BookingRequest
		if err := utils.JsonDecodeBody(r, &request); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		if err := v.Validate(request); err != nil {
			ae := utils.NewBadRequest(err.Error())
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		ans, err := service.CreateBooking(r.Context(), userID, &request)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusCreated, ans)
	}
}

func AllBookings(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		req := models.GetBookingsRequest{Cursor: q.Get("cursor")}

		switch scope := models.BookingScope(q.Get("scope")); scope {
		case models.ScopeAll, models.ScopeUpcoming, models.ScopePast:
			req.Scope = scope
		default:
			ae := utils.NewBadRequest("scope must be upcoming or past")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		if raw := q.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 1 || limit > 50 {
				ae := utils.NewBadRequest("limit must be between 1 and 50")
				utils.RenderResponse(w, ae.StatusCode, ae)
				return
			}
			req.Limit = limit
		}

		ans, err := service.AllBookings(r.Context(), userID, req)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, ans)
	}
}

func GetBooking(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		ans, err := service.GetBooking(r.Context(), userID, chi.URLParam(r, "booking_id"))
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, ans)
	}
}

func CancelBooking(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		ans, err := service.CancelBooking(r.Context(), userID, chi.URLParam(r, "booking_id"))
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, ans)
	}
}
