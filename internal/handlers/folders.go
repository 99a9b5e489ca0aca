package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/services"
)

type FoldersHandler struct {
	repo   services.Repository
	photos *services.PhotoService
}

func NewFoldersHandler(repo services.Repository, photos *services.PhotoService) *FoldersHandler {
	return &FoldersHandler{repo: repo, photos: photos}
}

// ListFolders godoc
// @Summary     List folders
// @Description Returns every folder with its photos, ordered by name
// @Tags        folders
// @Produce     json
// @Success     200 {object} models.FolderListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /folders [get]
func (h *FoldersHandler) ListFolders(c *gin.Context) {
	folders, err := h.repo.ListFolders(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list folders")
		return
	}

	ids := make([]int64, len(folders))
	for i, f := range folders {
		ids[i] = f.ID
	}
	photos, err := h.repo.ListPhotosInFolders(c.Request.Context(), ids)
	if err != nil {
		respondError(c, err, "failed to list photos")
		return
	}

	response := models.FolderListResponse{Folders: make([]models.FolderResponse, len(folders))}
	for i, f := range folders {
		response.Folders[i] = models.NewFolderResponse(f, photos[f.ID])
	}
	c.JSON(http.StatusOK, response)
}

// CreateFolder godoc
// @Summary     Create a folder
// @Tags        folders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateFolderRequest true "Folder"
// @Success     201 {object} models.FolderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /folders [post]
func (h *FoldersHandler) CreateFolder(c *gin.Context) {
	var req models.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err.Error())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := services.ValidateFolderName(req.Name); err != nil {
		respondError(c, err, "invalid folder name")
		return
	}

	folder, err := h.repo.CreateFolder(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondError(c, err, "failed to create folder")
		return
	}
	c.JSON(http.StatusCreated, models.NewFolderResponse(*folder, nil))
}

// GetFolder godoc
// @Summary     Get a folder by name
// @Tags        folders
// @Produce     json
// @Param       name path string true "Folder name"
// @Success     200 {object} models.FolderResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /folders/{name} [get]
func (h *FoldersHandler) GetFolder(c *gin.Context) {
	folder, err := h.repo.GetFolderByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err, "folder not found")
		return
	}

	photos, err := h.repo.ListPhotos(c.Request.Context(), models.PhotoFilter{FolderID: &folder.ID})
	if err != nil {
		respondError(c, err, "failed to list photos")
		return
	}
	c.JSON(http.StatusOK, models.NewFolderResponse(*folder, photos))
}

// UpdateFolder godoc
// @Summary     Rename a folder or change its description
// @Description Stored object keys are not rewritten on rename.
// @Tags        folders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       name    path string                     true "Folder name"
// @Param       request body models.UpdateFolderRequest true "Changes"
// @Success     200 {object} models.FolderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /folders/{name} [put]
func (h *FoldersHandler) UpdateFolder(c *gin.Context) {
	var req models.UpdateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err.Error())
		return
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := services.ValidateFolderName(name); err != nil {
			respondError(c, err, "invalid folder name")
			return
		}
		req.Name = &name
	}

	folder, err := h.repo.UpdateFolder(c.Request.Context(), c.Param("name"), req)
	if err != nil {
		respondError(c, err, "failed to update folder")
		return
	}
	c.JSON(http.StatusOK, models.NewFolderResponse(*folder, nil))
}

// DeleteFolder godoc
// @Summary     Delete a folder
// @Description Photos in the folder are kept and detached from it.
// @Tags        folders
// @Produce     json
// @Security    Bearer
// @Param       name path string true "Folder name"
// @Success     200 {object} models.MessageResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /folder/{name} [delete]
func (h *FoldersHandler) DeleteFolder(c *gin.Context) {
	name := c.Param("name")
	if err := h.repo.DeleteFolder(c.Request.Context(), name); err != nil {
		respondError(c, err, "failed to delete folder")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "folder " + name + " deleted"})
}

// GetFolderPhoto godoc
// @Summary     Download a photo by folder and filename
// @Tags        folders
// @Produce     octet-stream
// @Param       name     path string true "Folder name"
// @Param       filename path string true "Filename"
// @Success     200 {file} binary
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /folder/{name}/{filename} [get]
func (h *FoldersHandler) GetFolderPhoto(c *gin.Context) {
	data, contentType, err := h.photos.Open(c.Request.Context(), c.Param("name"), c.Param("filename"))
	if err != nil {
		respondError(c, err, "failed to fetch photo")
		return
	}
	c.Data(http.StatusOK, contentType, data)
}

// DeleteFolderPhoto godoc
// @Summary     Delete a photo by folder and filename
// @Description Deletes the blob and its metadata row. A blob without a row is still deleted.
// @Tags        folders
// @Produce     json
// @Security    Bearer
// @Param       name     path string true "Folder name"
// @Param       filename path string true "Filename"
// @Success     200 {object} models.MessageResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /folder/{name}/{filename} [delete]
func (h *FoldersHandler) DeleteFolderPhoto(c *gin.Context) {
	name, filename := c.Param("name"), c.Param("filename")
	if err := h.photos.DeleteFromFolder(c.Request.Context(), name, filename); err != nil {
		respondError(c, err, "failed to delete photo")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "photo " + name + "/" + filename + " deleted"})
}
