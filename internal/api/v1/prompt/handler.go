package prompt

import (
	"net/http"
	"strconv"

	"promptstack-backend/internal/store"
	"promptstack-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Handler serves the prompt, version and compose endpoints.
type Handler struct {
	store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "invalid "+name+" parameter"))
		return 0, false
	}
	return uint(id), true
}

// Create godoc
// @Summary Create a new prompt
// @Description Create a prompt with a title, content and optional folder
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body CreatePromptRequest true "Create Prompt Request"
// @Success 201 {object} utils.Response{data=models.Prompt}
// @Failure 400 {object} utils.Response
// @Router /prompts [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prompt, err := h.store.CreatePrompt(req.Title, req.Content, req.FolderID)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Prompt created successfully", prompt))
}

// List godoc
// @Summary List prompts
// @Description List prompts, optionally filtered by folder (0 = uncategorized) and title substring
// @Tags prompts
// @Produce json
// @Param folder_id query int false "Folder ID, 0 for uncategorized only"
// @Param search query string false "Case-insensitive title substring"
// @Success 200 {object} utils.Response{data=[]models.Prompt}
// @Router /prompts [get]
func (h *Handler) List(c *gin.Context) {
	var folderID *uint
	if raw := c.Query("folder_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "invalid folder_id parameter"))
			return
		}
		id := uint(parsed)
		folderID = &id
	}

	prompts, err := h.store.ListPrompts(folderID, c.Query("search"))
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompts retrieved successfully", prompts))
}

// Get godoc
// @Summary Get a prompt
// @Tags prompts
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	prompt, err := h.store.GetPrompt(id)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt retrieved successfully", prompt))
}

// Update godoc
// @Summary Update a prompt
// @Description Apply field changes; the pre-update state is snapshotted as a new version
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path int true "Prompt ID"
// @Param request body UpdatePromptRequest true "Update Prompt Request"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prompt, err := h.store.UpdatePrompt(id, store.PromptUpdate{
		Title:    req.Title,
		Content:  req.Content,
		FolderID: req.FolderID,
	})
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt updated successfully", prompt))
}

// Delete godoc
// @Summary Delete a prompt
// @Description Delete a prompt and all of its versions
// @Tags prompts
// @Param id path int true "Prompt ID"
// @Success 204
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeletePrompt(id); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListVersions godoc
// @Summary List versions of a prompt
// @Tags versions
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 200 {object} utils.Response{data=[]models.PromptVersion}
// @Failure 404 {object} utils.Response
// @Router /prompts/{id}/versions [get]
func (h *Handler) ListVersions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	versions, err := h.store.ListVersions(id)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Versions retrieved successfully", versions))
}

// RestoreVersion godoc
// @Summary Restore a prompt to a previous version
// @Description Snapshot the current state, then copy the target version's title/content onto the live prompt
// @Tags versions
// @Produce json
// @Param id path int true "Prompt ID"
// @Param number path int true "Version number"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 404 {object} utils.Response
// @Router /prompts/{id}/versions/{number}/restore [post]
func (h *Handler) RestoreVersion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	number, ok := parseIDParam(c, "number")
	if !ok {
		return
	}

	prompt, err := h.store.RestoreVersion(id, number)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Version restored successfully", prompt))
}

// Compose godoc
// @Summary Compose a prompt
// @Description Expand {{id-or-title}} references and named variables; unresolved tokens are reported, not errors
// @Tags compose
// @Accept json
// @Produce json
// @Param request body ComposeRequest true "Compose Request"
// @Success 200 {object} utils.Response{data=ComposeResponse}
// @Failure 404 {object} utils.Response
// @Router /compose [post]
func (h *Handler) Compose(c *gin.Context) {
	var req ComposeRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var (
		result     string
		unresolved []string
	)
	if req.PromptID != nil {
		var err error
		result, unresolved, err = h.store.ComposePrompt(*req.PromptID, req.Variables)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
	} else {
		result, unresolved = h.store.Compose(req.Content, req.Variables)
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt composed successfully", ComposeResponse{
		Result:     result,
		Unresolved: unresolved,
	}))
}
