package response_models

type UploadImageResponse struct {
	FilePath      string        `json:"file_path"`
	PublicURL     string        `json:"public_url"`
	ThumbnailURL  string        `json:"thumbnail_url,omitempty"`
	SuggestedName string        `json:"suggested_name"`
	Tour          *TourResponse `json:"tour"`
}

type LibraryEntryResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	FilePath  string   `json:"file_path"`
	PublicURL string   `json:"public_url"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
}
