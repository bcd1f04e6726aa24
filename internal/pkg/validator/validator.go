package validator

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("positivenumber", validatePositiveNumber)
	validate.RegisterValidation("wholenumber", validateWholeNumber)
	validate.RegisterValidation("isodate", validateISODate)
}

// Check runs a single validator tag (e.g. "min=2") against value.
func Check(value string, tag string) error {
	return validate.Var(value, tag)
}

// ParseNumber reads a form value the way a browser's Number() would for
// plain decimal input. Blank input is not a number.
func ParseNumber(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// IsValidDate checks if the date string is a real calendar day in YYYY-MM-DD format
func IsValidDate(date string) bool {
	_, err := time.Parse(dateLayout, strings.TrimSpace(date))
	return err == nil
}

func validatePositiveNumber(fl validator.FieldLevel) bool {
	n, ok := ParseNumber(fl.Field().String())
	return ok && n > 0
}

func validateWholeNumber(fl validator.FieldLevel) bool {
	n, ok := ParseNumber(fl.Field().String())
	return ok && n == math.Trunc(n) && n <= math.MaxInt32
}

func validateISODate(fl validator.FieldLevel) bool {
	return IsValidDate(fl.Field().String())
}
