package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Check runs the `validate` tags on a request payload. The API reports
// missing fields inside a 200 body, so callers map a non-nil result to the
// client-error shape instead of an HTTP failure status.
func Check(v any) error {
	return validate.Struct(v)
}
