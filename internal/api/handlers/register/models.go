package register

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse HTTP response model
type RegisterResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
