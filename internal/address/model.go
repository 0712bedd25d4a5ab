package address

import (
	"github.com/go-playground/validator/v10"

	"grocer-be/internal/utils"
)

// ShippingFields are the rules of the checkout shipping form. Keys match the
// form input names and are kept as-is in the order's shippingInfo.
var ShippingFields = []utils.FieldRule{
	{Key: "fullName", Label: "Full Name", Rule: "required,max=120"},
	{Key: "email", Label: "Email", Rule: "omitempty,email"},
	{Key: "phone", Label: "Phone", Rule: "required,min=7,max=20"},
	{Key: "address", Label: "Address", Rule: "required,max=200"},
	{Key: "city", Label: "City", Rule: "required,max=80"},
	{Key: "state", Label: "State", Rule: "omitempty,max=80"},
	{Key: "zipCode", Label: "Zip Code", Rule: "omitempty,max=12"},
}

var validate = validator.New()

// ValidateShipping checks the shipping form. Besides the validated fields,
// any other non-empty submitted field is carried through unchanged, so the
// result stays a free-form mapping.
func ValidateShipping(input map[string]string) (map[string]string, error) {
	values, err := utils.ValidateFields(validate, input, ShippingFields)
	if err != nil {
		return nil, err
	}
	for k, v := range input {
		if _, known := values[k]; known || v == "" {
			continue
		}
		if isRuleField(k) {
			continue
		}
		values[k] = v
	}
	return values, nil
}

func isRuleField(key string) bool {
	for _, r := range ShippingFields {
		if r.Key == key {
			return true
		}
	}
	return false
}
