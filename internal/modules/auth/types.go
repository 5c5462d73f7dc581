package auth

// LoginDTO is the request body for POST /auth/login.
type LoginDTO struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterDTO is the request body for POST /auth/register.
type RegisterDTO struct {
	Name     string `json:"name"     binding:"required"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	VIP      bool   `json:"vip"`
	IsAdmin  bool   `json:"isAdmin"`
}
