package auth

// TokenResponse represents an access token response
// swagger:model TokenResponse
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"<JWT>"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int    `json:"expires_in" example:"900"`
	Role        string `json:"role,omitempty" example:"user"`
}

// LoginRequest represents the password login request body
// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" example:"marie.dupont"`
	Password string `json:"password" example:"Secretp@ssw0rd"`
}

// RegisterRequest represents the registration request body
// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" example:"marie.dupont"`
	Password string `json:"password" example:"Secretp@ssw0rd"`
}
