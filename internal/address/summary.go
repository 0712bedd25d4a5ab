package address

import "strings"

const notProvided = "Not provided"

// Summary is the delivery block shown on confirmation and tracking views.
type Summary struct {
	Name     string
	Address  string
	Locality string
	Phone    string
}

// Summarize reads a free-form shipping mapping. Name falls back from fullName
// to name to "firstName lastName".
func Summarize(info map[string]string) Summary {
	name := firstNonEmpty(info["fullName"], info["name"])
	if name == "" {
		name = strings.TrimSpace(info["firstName"] + " " + info["lastName"])
	}

	return Summary{
		Name:     orNotProvided(name),
		Address:  orNotProvided(info["address"]),
		Locality: Locality(info["city"], info["state"], info["zipCode"]),
		Phone:    orNotProvided(info["phone"]),
	}
}

// Locality joins "City, State Zip", dropping separators around empty parts.
func Locality(city, state, zip string) string {
	var b strings.Builder
	b.WriteString(city)
	if city != "" && (state != "" || zip != "") {
		b.WriteString(", ")
	}
	b.WriteString(state)
	if state != "" && zip != "" {
		b.WriteString(" ")
	}
	b.WriteString(zip)
	return b.String()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func orNotProvided(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}
