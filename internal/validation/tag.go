package validation

import (
	"github.com/go-playground/validator/v10"
)

// Tag is the struct tag name registered by RegisterValidation.
const Tag = "chi"

// RegisterValidation adds the "chi" tag to v. String fields tagged with it
// pass only when Check reports StatusValid.
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation(Tag, func(fl validator.FieldLevel) bool {
		return Check(fl.Field().String()) == StatusValid
	})
}
