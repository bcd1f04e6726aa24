package consultation

import "github.com/xyz-asif/findme/internal/pkg/form"

var Schema = form.NewSchema(
	form.Field{Name: FieldName, Rules: []form.Rule{
		{Tag: "min=2", Message: "Name must be at least 2 characters"},
	}},
	form.Field{Name: FieldPhone, Rules: []form.Rule{
		{Tag: "min=10", Message: "Valid phone number is required"},
	}},
	form.Field{Name: FieldMessage, Rules: []form.Rule{
		{Tag: "min=10", Message: "Message must be at least 10 characters"},
	}},
)
