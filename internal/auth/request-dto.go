package auth

// login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// registration request payload
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string `json:"last_name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"` // Optional, defaults to "user"
}

// represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// represents change password request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// profile update payload. Contact fields feed the checkout prefill.
type UpdateProfileRequest struct {
	FirstName   string `json:"first_name,omitempty" validate:"omitempty,min=2,max=100"`
	LastName    string `json:"last_name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone       string `json:"phone,omitempty"`
	Nationality string `json:"nationality,omitempty" validate:"omitempty,len=2"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
}

// represents logout request
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}
