package api

import (
	"net/http"

	"travelbook/internal/ports"
	"travelbook/internal/utils"
)

// QueryTravelOptions serves the unauthenticated read-only projection of
// the catalog, capped at 20 entries.
func QueryTravelOptions(service ports.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseSearchFilter(r, false)
		if err != nil {
			ae := utils.NewBadRequest(err.Error())
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		ans, err := service.QueryTravelOptions(r.Context(), filter)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, ans)
	}
}
