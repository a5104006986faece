package response_models

type PostResponse struct {
	ID          string  `json:"id"`
	CreatedAt   string  `json:"created_at"`
	CreatedBy   string  `json:"created_by"`
	CreatorName string  `json:"creator_name"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	LocLink     string  `json:"loc_link"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type EmergencyContactResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phno      string  `json:"phno"`
	Loc       string  `json:"loc"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Link      *string `json:"link,omitempty"`
	Creator   string  `json:"creator"`
}
