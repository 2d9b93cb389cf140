package auth

// LoginResponse carries the bearer token staff routes accept
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
	Role      string `json:"role"`
}
