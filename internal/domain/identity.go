package domain

// Identity is the authenticated user as the platform reports it.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
