package payment

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"grocer-be/internal/utils"
)

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})
	return v
}

func ParseMethod(s string) (Method, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "", ErrNoMethod
	}
	m := Method(s)
	if !m.Valid() {
		return "", ErrUnknownMethod
	}
	return m, nil
}

// Collect validates the detail form of method and returns the Info to store on
// the order. Failures come back as *utils.ValidationError.
func Collect(method Method, details map[string]string) (Info, error) {
	if !method.Valid() {
		return Info{}, ErrUnknownMethod
	}

	info := Info{Method: method, Details: map[string]string{}}
	if !method.RequiresDetails() {
		return info, nil
	}

	values, err := utils.ValidateFields(validate, details, method.Fields())
	if err != nil {
		return Info{}, err
	}
	info.Details = values
	return info, nil
}
