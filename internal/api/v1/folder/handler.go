package folder

import (
	"net/http"
	"strconv"

	"promptstack-backend/internal/store"
	"promptstack-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Handler serves the folder endpoints.
type Handler struct {
	store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// Create godoc
// @Summary Create a new folder
// @Description Create a folder with a unique, case-sensitive name
// @Tags folders
// @Accept json
// @Produce json
// @Param request body CreateFolderRequest true "Create Folder Request"
// @Success 201 {object} utils.Response{data=models.Folder}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /folders [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateFolderRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	folder, err := h.store.CreateFolder(req.Name)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Folder created successfully", folder))
}

// List godoc
// @Summary List folders
// @Tags folders
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.Folder}
// @Router /folders [get]
func (h *Handler) List(c *gin.Context) {
	folders, err := h.store.ListFolders()
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Folders retrieved successfully", folders))
}

// Update godoc
// @Summary Rename a folder
// @Tags folders
// @Accept json
// @Produce json
// @Param id path int true "Folder ID"
// @Param request body UpdateFolderRequest true "Update Folder Request"
// @Success 200 {object} utils.Response{data=models.Folder}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /folders/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateFolderRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	folder, err := h.store.UpdateFolder(id, req.Name)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Folder updated successfully", folder))
}

// Delete godoc
// @Summary Delete a folder
// @Description Delete a folder; member prompts become uncategorized
// @Tags folders
// @Produce json
// @Param id path int true "Folder ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /folders/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.store.DeleteFolder(id); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Folder deleted successfully", nil))
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "invalid id parameter"))
		return 0, false
	}
	return uint(id), true
}
