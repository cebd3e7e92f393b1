package dto

// AdminLoginRequest authenticates staff against the upstream auth endpoint.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// OTPGenerateRequest asks for a one-time code.
type OTPGenerateRequest struct {
	Phone string `json:"phone" validate:"required,min=7,max=15"`
}

// OTPVerifyRequest exchanges the code for a customer token.
type OTPVerifyRequest struct {
	Phone string `json:"phone" validate:"required,min=7,max=15"`
	Code  string `json:"otp"   validate:"required,len=6,numeric"`
}

// CustomerLoginRequest authenticates a customer by phone + password.
type CustomerLoginRequest struct {
	Phone    string `json:"phone"    validate:"required,min=7,max=15"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest creates a self-service customer account.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Phone    string `json:"phone"    validate:"required,min=7,max=15"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ChangePasswordRequest rotates the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}
