package request_models

type SaveToLibraryRequest struct {
	Name      string `json:"name"`
	FilePath  string `json:"file_path" binding:"required"`
	PublicURL string `json:"public_url" binding:"required"`
}
