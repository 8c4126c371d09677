package models

// AuthResponse is the fixed payload of the authentication endpoints.
// Token is null when no credential was issued (conflict, signout).
type AuthResponse struct {
	Token   *string `json:"token"`
	Message string  `json:"message"`
}
