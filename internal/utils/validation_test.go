package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFields(t *testing.T) {
	v := validator.New()
	rules := []FieldRule{
		{Key: "fullName", Label: "Full Name", Rule: "required"},
		{Key: "email", Label: "Email", Rule: "omitempty,email"},
		{Key: "phone", Label: "Phone", Rule: "required,numeric,min=9"},
	}

	t.Run("Valid", func(t *testing.T) {
		got, err := ValidateFields(v, map[string]string{
			"fullName": "  Ama Owusu ",
			"phone":    "0241234567",
			"ignored":  "not in rules",
		}, rules)

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"fullName": "Ama Owusu", "phone": "0241234567"}, got)
	})

	t.Run("Collects every failure in rule order", func(t *testing.T) {
		_, err := ValidateFields(v, map[string]string{
			"email": "not-an-email",
			"phone": "12ab",
		}, rules)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 3)
		assert.Equal(t, FieldError{Field: "fullName", Message: "Full Name is required"}, verr.Fields[0])
		assert.Equal(t, "Email must be a valid email address", verr.Fields[1].Message)
		assert.Equal(t, "Phone must contain digits only", verr.Fields[2].Message)

		assert.Equal(t, "Full Name is required", verr.Messages()["fullName"])
		assert.Contains(t, verr.Error(), "fullName: Full Name is required")
	})

	t.Run("Min length message", func(t *testing.T) {
		_, err := ValidateFields(v, map[string]string{"fullName": "x", "phone": "123"}, rules)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Phone must be at least 9 characters", verr.Messages()["phone"])
	})
}

func TestFieldKey(t *testing.T) {
	tests := map[string]string{
		"Card Number":    "card_number",
		"Expiry  Date":   "expiry_date",
		"CVV":            "cvv",
		" Mobile Number": "mobile_number",
	}
	for in, want := range tests {
		assert.Equal(t, want, FieldKey(in), in)
	}
}
