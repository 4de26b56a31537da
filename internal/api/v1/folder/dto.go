package folder

// CreateFolderRequest is the payload for creating a folder.
type CreateFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateFolderRequest renames a folder.
type UpdateFolderRequest struct {
	Name string `json:"name" binding:"required"`
}
