package models

// User is the minimal identity returned alongside a session token.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthPayload is the result of a successful login or signup exchange.
type AuthPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
