package api

import (
	"net/http"

	models "travelbook/internal"
	"travelbook/internal/ports"
	"travelbook/internal/utils"
	"travelbook/internal/validator"
)

func GetProfile(service ports.ProfileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		ans, err := service.GetProfile(r.Context(), userID)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, ans)
	}
}

func UpdateProfile(service ports.ProfileService) http.HandlerFunc {
	v := validator.NewCustomValidator()
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var request models.UpdateProfileRequest
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

		ans, err := service.UpdateProfile(r.Context(), userID, &request)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, ans)
	}
}
