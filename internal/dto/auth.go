package dto

// LoginRequest captures credentials for an existing harvester account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token used on secured harvest routes.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
