package models

// User represents an account allowed to log in
type User struct {
	Username     string
	PasswordHash []byte
}

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the body of a successful POST /api/login
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}
