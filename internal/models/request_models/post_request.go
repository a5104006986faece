package request_models

type CreatePostRequest struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	LocLink  string  `json:"loc_link" binding:"required"`
	ImageURL *string `json:"image_url"`
}

type UpdatePostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	LocLink  *string `json:"loc_link"`
	ImageURL *string `json:"image_url"`
}
