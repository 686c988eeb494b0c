package models

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login response.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Claims represents the JWT claims carried by an API token.
type Claims struct {
	Username string `json:"username"`
	Exp      int64  `json:"exp"`
}
