package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grocer-be/internal/utils"
)

func validShipping() map[string]string {
	return map[string]string{
		"fullName": "Ama Owusu",
		"phone":    "0241234567",
		"address":  "12 Ring Road",
		"city":     "Accra",
		"state":    "Greater Accra",
		"zipCode":  "GA-123",
	}
}

func TestValidateShipping(t *testing.T) {
	t.Run("Valid form keeps extra fields", func(t *testing.T) {
		in := validShipping()
		in["notes"] = "gate code 42"
		in["empty"] = ""

		got, err := ValidateShipping(in)
		require.NoError(t, err)
		assert.Equal(t, "Ama Owusu", got["fullName"])
		assert.Equal(t, "gate code 42", got["notes"])
		_, hasEmpty := got["empty"]
		assert.False(t, hasEmpty)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		_, err := ValidateShipping(map[string]string{"fullName": "Ama"})

		var verr *utils.ValidationError
		require.ErrorAs(t, err, &verr)
		msgs := verr.Messages()
		assert.Equal(t, "Phone is required", msgs["phone"])
		assert.Equal(t, "Address is required", msgs["address"])
		assert.Equal(t, "City is required", msgs["city"])
		assert.NotContains(t, msgs, "state")
	})

	t.Run("Bad email", func(t *testing.T) {
		in := validShipping()
		in["email"] = "ama@"

		_, err := ValidateShipping(in)
		var verr *utils.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Messages(), "email")
	})
}

func TestSummarize(t *testing.T) {
	t.Run("Full info", func(t *testing.T) {
		s := Summarize(validShipping())
		assert.Equal(t, Summary{
			Name:     "Ama Owusu",
			Address:  "12 Ring Road",
			Locality: "Accra, Greater Accra GA-123",
			Phone:    "0241234567",
		}, s)
	})

	t.Run("Name fallbacks", func(t *testing.T) {
		assert.Equal(t, "Kofi", Summarize(map[string]string{"name": "Kofi"}).Name)
		assert.Equal(t, "Kofi Mensah", Summarize(map[string]string{"firstName": "Kofi", "lastName": "Mensah"}).Name)
		assert.Equal(t, "Mensah", Summarize(map[string]string{"lastName": "Mensah"}).Name)
		assert.Equal(t, notProvided, Summarize(nil).Name)
	})

	t.Run("Missing fields", func(t *testing.T) {
		s := Summarize(map[string]string{})
		assert.Equal(t, notProvided, s.Address)
		assert.Equal(t, notProvided, s.Phone)
		assert.Equal(t, "", s.Locality)
	})
}

func TestLocality(t *testing.T) {
	tests := []struct {
		city, state, zip string
		want             string
	}{
		{"Accra", "GA", "00233", "Accra, GA 00233"},
		{"Accra", "", "00233", "Accra, 00233"},
		{"Accra", "GA", "", "Accra, GA"},
		{"Accra", "", "", "Accra"},
		{"", "GA", "00233", "GA 00233"},
		{"", "", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Locality(tt.city, tt.state, tt.zip))
	}
}
