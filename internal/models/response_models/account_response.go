package response_models

type TouristResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Badge           string  `json:"badge"`
	Bio             *string `json:"bio,omitempty"`
	ProfileImage    *string `json:"profile_image,omitempty"`
	BackgroundImage *string `json:"background_image,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
