package chat

import (
	"strings"

	"shoestore/internal/domain"
	"shoestore/internal/validate"
)

// ValidateSubmission checks submitted values against a form descriptor,
// field by field. Returns a map of field id to error message; an empty map
// means the submission is valid. Unknown extra values are ignored.
func ValidateSubmission(form domain.FormDescriptor, values map[string]string) map[string]string {
	errs := map[string]string{}
	for _, f := range form.Fields {
		v := strings.TrimSpace(values[f.ID])
		if v == "" {
			if f.Required {
				errs[f.ID] = f.Label + " is required"
			}
			continue
		}
		switch f.Kind {
		case domain.FieldEmail:
			if _, ok := validate.Email(v); !ok {
				errs[f.ID] = "Enter a valid email address"
			}
		case domain.FieldPhone:
			if _, ok := validate.Phone(v); !ok {
				errs[f.ID] = "Enter a valid 10-digit phone number"
			}
		case domain.FieldDate:
			if _, ok := validate.Date(v, f.MinDate, f.MaxDate); !ok {
				errs[f.ID] = "Enter a valid date"
			}
		case domain.FieldSelect:
			if !containsOption(f.Options, v) {
				errs[f.ID] = "Choose one of the listed options"
			}
		}
	}
	return errs
}

func containsOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
