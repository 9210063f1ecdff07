package session

// AuthResponse is the result of a login attempt. A rejected password is a
// normal outcome (Success=false), not an error.
type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// Rejected builds a failed AuthResponse with an optional reason.
func Rejected(reason string) AuthResponse {
	return AuthResponse{Success: false, Error: reason}
}

// Accepted builds a successful AuthResponse carrying token.
func Accepted(token string) AuthResponse {
	return AuthResponse{Success: true, Token: token}
}
