package report

import (
	"strings"

	"github.com/xyz-asif/findme/internal/features/intake"
	"github.com/xyz-asif/findme/internal/pkg/form"
	"github.com/xyz-asif/findme/internal/pkg/validator"
)

var Schema = form.NewSchema(
	form.Field{Name: FieldFullName, Rules: []form.Rule{
		{Tag: "min=2", Message: "Full name must be at least 2 characters"},
	}},
	form.Field{Name: FieldAge, Rules: []form.Rule{
		{Tag: "min=1", Message: "Age is required"},
		{Tag: "positivenumber", Message: "Age must be a valid positive number"},
		{Tag: "wholenumber", Message: "Age must be a whole number"},
	}},
	form.Field{Name: FieldCityLastSeen, Rules: []form.Rule{
		{Tag: "min=2", Message: "City is required"},
	}},
	form.Field{Name: FieldDateLastSeen, Rules: []form.Rule{
		{Tag: "min=1", Message: "Date is required"},
		{Tag: "isodate", Message: "Date must be in YYYY-MM-DD format"},
	}},
	form.Field{Name: FieldContactPhone, Rules: []form.Rule{
		{Tag: "min=10", Message: "Valid phone number is required"},
	}},
	form.Field{Name: FieldNearbyPoliceStation, Rules: []form.Rule{
		{Tag: "min=2", Message: "Police station name and address is required"},
	}},
	form.Field{Name: FieldAdditionalDescription, Optional: true},
)

// buildSubmission assumes values already passed Schema.
func buildSubmission(values form.Values, images []intake.Preview) Submission {
	age, _ := validator.ParseNumber(values[FieldAge])
	return Submission{
		FullName:              values[FieldFullName],
		Age:                   int(age),
		CityLastSeen:          values[FieldCityLastSeen],
		DateLastSeen:          strings.TrimSpace(values[FieldDateLastSeen]),
		ContactPhone:          values[FieldContactPhone],
		NearbyPoliceStation:   values[FieldNearbyPoliceStation],
		AdditionalDescription: values[FieldAdditionalDescription],
		Images:                images,
	}
}
