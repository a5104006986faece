package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	Name            string  `json:"name" binding:"required,min=3,max=50"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"pwd" binding:"required,min=6"`
	Badge           string  `json:"badge" binding:"required"`
	Bio             *string `json:"bio"`
	ProfileImage    *string `json:"profile_image"`
	BackgroundImage *string `json:"background_image"`
}

type UpdateTouristRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Badge           *string `json:"badge"`
	Bio             *string `json:"bio"`
	ProfileImage    *string `json:"profile_image"`
	BackgroundImage *string `json:"background_image"`
}

type ForgotPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
	Token       string `json:"token" binding:"required"`
}

type RequestForgotPassword struct {
	Email string `json:"email" binding:"required,email"`
}
