package request_models

type CreateEmergencyContactRequest struct {
	Name      string  `json:"name" binding:"required"`
	Phno      string  `json:"phno" binding:"required"`
	Loc       string  `json:"loc" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Link      *string `json:"link"`
}

type UpdateEmergencyContactRequest struct {
	Name      *string  `json:"name"`
	Phno      *string  `json:"phno"`
	Loc       *string  `json:"loc"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Link      *string  `json:"link"`
}
