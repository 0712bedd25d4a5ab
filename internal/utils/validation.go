package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldRule binds a form field to a validator tag string.
type FieldRule struct {
	Key   string
	Label string
	Rule  string
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed, in rule order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// Messages maps field key to message, the shape views need.
func (e *ValidationError) Messages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

// ValidateFields trims each input named by rules, checks it, and returns the
// trimmed values of the rule fields that were submitted. It returns a
// *ValidationError when any rule fails.
func ValidateFields(v *validator.Validate, input map[string]string, rules []FieldRule) (map[string]string, error) {
	values := make(map[string]string, len(rules))
	var failed []FieldError

	for _, r := range rules {
		val := strings.TrimSpace(input[r.Key])
		if err := v.Var(val, r.Rule); err != nil {
			failed = append(failed, FieldError{Field: r.Key, Message: message(r.Label, err)})
			continue
		}
		if val != "" {
			values[r.Key] = val
		}
	}

	if len(failed) > 0 {
		return nil, &ValidationError{Fields: failed}
	}
	return values, nil
}

func message(label string, err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return label + " is invalid"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return label + " must be a valid email address"
	case "numeric":
		return label + " must contain digits only"
	case "len":
		return fmt.Sprintf("%s must be %s characters", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "credit_card":
		return label + " is not a valid card number"
	case "expiry":
		return label + " must look like MM/YY"
	default:
		return label + " is invalid"
	}
}

// FieldKey turns a field label into its detail key: lower case, whitespace
// runs replaced by underscores.
func FieldKey(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "_")
}
