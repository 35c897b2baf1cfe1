package rest

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"
)

// NewValidator reports fields by their JSON names and understands decimal
// amounts, so `gt=0` works on money. The `units` tag rejects amounts whose
// whole part does not fit in an int64.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Field() is the float64 from the custom type func, so the exact decimal
	// is read back from the parent struct.
	_ = v.RegisterValidation("units", func(fl validator.FieldLevel) bool {
		field := reflect.Indirect(fl.Parent()).FieldByName(fl.StructFieldName())
		amount, ok := field.Interface().(decimal.Decimal)
		return ok && application.FitsCurrencyUnits(amount)
	})

	return v
}

// ValidationDetails turns validator errors into field -> rule pairs.
func ValidationDetails(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}

	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details[fe.Field()] = rule
	}
	return details
}

func WriteValidationError(w http.ResponseWriter, err error) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   "validation failed",
		Details: ValidationDetails(err),
	})
}
