package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	models "travelbook/internal"
	"travelbook/internal/auth"
	"travelbook/internal/ports"
	"travelbook/internal/utils"
	"travelbook/internal/validator"
)

func SearchTravelOptions(service ports.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseSearchFilter(r, true)
		if err != nil {
			ae := utils.NewBadRequest(err.Error())
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		page := 1
		if raw := r.URL.Query().Get("page"); raw != "" {
			page, err = strconv.Atoi(raw)
			if err != nil || page < 1 {
				ae := utils.NewBadRequest("page must be a positive integer")
				utils.RenderResponse(w, ae.StatusCode, ae)
				return
			}
		}

		ans, err := service.SearchTravelOptions(r.Context(), filter, page)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, ans)
	}
}

func FeaturedTravelOptions(service ports.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := service.FeaturedTravelOptions(r.Context())
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, map[string][]models.TravelOption{"travel_options": options})
	}
}

func GetTravelOption(service ports.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		travelID := chi.URLParam(r, "travel_id")
		option, err := service.GetTravelOption(r.Context(), travelID)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, option)
	}
}

// CreateTravelOption is the catalog-management entry point, restricted
// to callers carrying the admin role.
func CreateTravelOption(service ports.TravelService) http.HandlerFunc {
	v := validator.NewCustomValidator()
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireUser(w, r); !ok {
			return
		}
		if auth.Role(r.Context()) != auth.RoleAdmin {
			ae := utils.NewForbidden("admin role required")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		var request models.CreateTravelOptionRequest
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

		option, err := service.CreateTravelOption(r.Context(), &request)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusCreated, option)
	}
}
