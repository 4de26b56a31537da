package prompt

// CreatePromptRequest is the payload for creating a prompt.
type CreatePromptRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	FolderID *uint  `json:"folder_id"`
}

// UpdatePromptRequest carries optional field changes. Omitted fields are left
// unchanged; folder_id 0 clears the folder assignment.
type UpdatePromptRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	FolderID *uint   `json:"folder_id"`
}

// ComposeRequest expands either raw content or a stored prompt (by id).
type ComposeRequest struct {
	PromptID  *uint             `json:"prompt_id"`
	Content   string            `json:"content"`
	Variables map[string]string `json:"variables"`
}

// ComposeResponse reports the expanded text and any tokens left verbatim.
type ComposeResponse struct {
	Result     string   `json:"result"`
	Unresolved []string `json:"unresolved"`
}
