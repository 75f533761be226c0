// Package dto provides data transfer objects for the user HTTP layer.
package dto

// RegisterRequest represents the API request for account registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the API request for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents the API request for profile updates
type UpdateProfileRequest struct {
	Name string `json:"name"`
}
