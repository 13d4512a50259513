package validator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	models "travelbook/internal"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9 \-()]{7,15}$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("travel_type", validateTravelType)
	v.RegisterValidation("future_date", validateFutureDate)
	v.RegisterValidation("phone", validatePhone)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func validateTravelType(fl validator.FieldLevel) bool {
	return models.TravelType(fl.Field().String()).Valid()
}

func validateFutureDate(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return date.After(time.Now())
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}
