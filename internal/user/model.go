package user

// Session is the simulated logged-in identity persisted under userData.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
