package union

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// RegisterValidation registers the union's membership test as a custom
// validation tag on v, so struct fields can opt in with
// `validate:"<tag>"`. Non-string fields fail validation rather than
// panicking.
func (u Union[T]) RegisterValidation(v *validator.Validate, tag string) error {
	return v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.String {
			return false
		}
		return u.Contains(f.String())
	})
}
