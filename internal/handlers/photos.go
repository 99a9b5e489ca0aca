package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/services"
)

const (
	defaultPhotoLimit = 100
	maxPhotoLimit     = 1000
)

type PhotosHandler struct {
	repo   services.Repository
	photos *services.PhotoService
	search *services.SearchService
}

func NewPhotosHandler(repo services.Repository, photos *services.PhotoService, search *services.SearchService) *PhotosHandler {
	return &PhotosHandler{repo: repo, photos: photos, search: search}
}

// ListPhotos godoc
// @Summary     List photos
// @Description Newest first. Optional folder_id filter with skip/limit paging.
// @Tags        photos
// @Produce     json
// @Param       folder_id query int false "Folder ID"
// @Param       skip      query int false "Rows to skip"
// @Param       limit     query int false "Maximum rows (default 100, max 1000)"
// @Success     200 {object} models.PhotoListResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /photos [get]
func (h *PhotosHandler) ListPhotos(c *gin.Context) {
	filter, ok := pageFilter(c)
	if !ok {
		return
	}
	if raw := c.Query("folder_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequest(c, "invalid folder_id", err.Error())
			return
		}
		filter.FolderID = &id
	}

	photos, err := h.repo.ListPhotos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "failed to list photos")
		return
	}
	c.JSON(http.StatusOK, models.PhotoListResponse{Photos: models.NewPhotoResponses(photos)})
}

// SearchPhotos godoc
// @Summary     Search photos by metadata
// @Description name is a case-insensitive substring of the filename. Dates are YYYY-MM-DD or RFC3339; a bare date_to includes the whole day.
// @Tags        photos
// @Produce     json
// @Param       name      query string false "Filename substring"
// @Param       folder    query string false "Folder name"
// @Param       mimetype  query string false "MIME type"
// @Param       date_from query string false "Uploaded on or after"
// @Param       date_to   query string false "Uploaded on or before"
// @Param       skip      query int    false "Rows to skip"
// @Param       limit     query int    false "Maximum rows (default 100, max 1000)"
// @Success     200 {object} models.PhotoListResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /photos/search [get]
func (h *PhotosHandler) SearchPhotos(c *gin.Context) {
	filter, ok := pageFilter(c)
	if !ok {
		return
	}
	filter.Name = strings.TrimSpace(c.Query("name"))
	filter.FolderName = strings.TrimSpace(c.Query("folder"))
	filter.MimeType = strings.TrimSpace(c.Query("mimetype"))

	var err error
	if filter.DateFrom, err = parseDate(c.Query("date_from"), false); err != nil {
		badRequest(c, "invalid date_from", err.Error())
		return
	}
	if filter.DateTo, err = parseDate(c.Query("date_to"), true); err != nil {
		badRequest(c, "invalid date_to", err.Error())
		return
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		badRequest(c, "invalid date range", "date_to is before date_from")
		return
	}

	photos, err := h.repo.ListPhotos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "failed to search photos")
		return
	}
	c.JSON(http.StatusOK, models.PhotoListResponse{Photos: models.NewPhotoResponses(photos)})
}

// SemanticSearch godoc
// @Summary     Semantic photo search
// @Description Ranks photos by embedding similarity between the query and each photo's filename, folder and location tag.
// @Tags        photos
// @Produce     json
// @Param       q     query string true  "Free-text query"
// @Param       limit query int    false "Maximum results (default 10)"
// @Success     200 {object} models.SemanticSearchResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /photos/semantic-search [get]
func (h *PhotosHandler) SemanticSearch(c *gin.Context) {
	limit, ok := queryInt(c, "limit", services.DefaultSemanticLimit)
	if !ok {
		return
	}
	query := c.Query("q")

	results, err := h.search.Semantic(c.Request.Context(), query, limit)
	if err != nil {
		respondError(c, err, "semantic search failed")
		return
	}
	c.JSON(http.StatusOK, models.SemanticSearchResponse{Query: strings.TrimSpace(query), Results: results})
}

// CreatePhoto godoc
// @Summary     Create a photo record
// @Description Records metadata for an image that is already hosted. Use /upload to store new files.
// @Tags        photos
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreatePhotoRequest true "Photo"
// @Success     201 {object} models.PhotoResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /photos [post]
func (h *PhotosHandler) CreatePhoto(c *gin.Context) {
	var req models.CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err.Error())
		return
	}

	photo := &models.Photo{
		Filename:    req.Filename,
		URL:         req.URL,
		MimeType:    nullString(req.MimeType),
		StoragePath: nullString(req.StoragePath),
	}
	if req.FolderID != nil {
		if err := h.checkFolder(c.Request.Context(), *req.FolderID); err != nil {
			respondError(c, err, "invalid folder_id")
			return
		}
		photo.FolderID = sql.NullInt64{Int64: *req.FolderID, Valid: true}
	}
	if req.Width != nil {
		photo.Width = sql.NullInt32{Int32: *req.Width, Valid: true}
	}
	if req.Height != nil {
		photo.Height = sql.NullInt32{Int32: *req.Height, Valid: true}
	}
	if req.LocationTag != nil {
		photo.LocationTag = nullString(*req.LocationTag)
	}

	if err := h.repo.CreatePhoto(c.Request.Context(), photo); err != nil {
		respondError(c, err, "failed to create photo")
		return
	}
	c.JSON(http.StatusCreated, models.NewPhotoResponse(*photo))
}

// GetPhoto godoc
// @Summary     Get a photo
// @Tags        photos
// @Produce     json
// @Param       id path int true "Photo ID"
// @Success     200 {object} models.PhotoResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /photos/{id} [get]
func (h *PhotosHandler) GetPhoto(c *gin.Context) {
	id, ok := photoID(c)
	if !ok {
		return
	}
	photo, err := h.repo.GetPhoto(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "photo not found")
		return
	}
	c.JSON(http.StatusOK, models.NewPhotoResponse(*photo))
}

// UpdatePhoto godoc
// @Summary     Update a photo
// @Description folder_id 0 detaches the photo from its folder. The stored object is not moved.
// @Tags        photos
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id      path int                       true "Photo ID"
// @Param       request body models.UpdatePhotoRequest true "Changes"
// @Success     200 {object} models.PhotoResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /photos/{id} [put]
func (h *PhotosHandler) UpdatePhoto(c *gin.Context) {
	id, ok := photoID(c)
	if !ok {
		return
	}
	var req models.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err.Error())
		return
	}

	ctx := c.Request.Context()
	photo, err := h.repo.GetPhoto(ctx, id)
	if err != nil {
		respondError(c, err, "photo not found")
		return
	}

	if req.FolderID != nil {
		if *req.FolderID == 0 {
			photo.FolderID = sql.NullInt64{}
		} else {
			if err := h.checkFolder(ctx, *req.FolderID); err != nil {
				respondError(c, err, "invalid folder_id")
				return
			}
			photo.FolderID = sql.NullInt64{Int64: *req.FolderID, Valid: true}
		}
	}
	if req.Filename != nil {
		name := strings.TrimSpace(*req.Filename)
		if name == "" {
			badRequest(c, "invalid filename", "filename must not be empty")
			return
		}
		photo.Filename = name
	}
	if req.LocationTag != nil {
		photo.LocationTag = nullString(strings.TrimSpace(*req.LocationTag))
	}

	if err := h.repo.UpdatePhoto(ctx, photo); err != nil {
		respondError(c, err, "failed to update photo")
		return
	}
	c.JSON(http.StatusOK, models.NewPhotoResponse(*photo))
}

// DeletePhoto godoc
// @Summary     Delete a photo
// @Description Deletes the stored object, then the metadata row. If the object delete fails the row is kept.
// @Tags        photos
// @Produce     json
// @Security    Bearer
// @Param       id path int true "Photo ID"
// @Success     200 {object} models.MessageResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /photos/{id} [delete]
func (h *PhotosHandler) DeletePhoto(c *gin.Context) {
	id, ok := photoID(c)
	if !ok {
		return
	}
	if err := h.photos.DeletePhoto(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete photo")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: fmt.Sprintf("photo %d deleted", id)})
}

func (h *PhotosHandler) checkFolder(ctx context.Context, id int64) error {
	_, err := h.repo.GetFolder(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("folder %d does not exist: %w", id, models.ErrValidation)
	}
	return err
}

func photoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid photo id", "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func pageFilter(c *gin.Context) (models.PhotoFilter, bool) {
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return models.PhotoFilter{}, false
	}
	limit, ok := queryInt(c, "limit", defaultPhotoLimit)
	if !ok {
		return models.PhotoFilter{}, false
	}
	if limit == 0 || limit > maxPhotoLimit {
		limit = maxPhotoLimit
	}
	return models.PhotoFilter{Offset: skip, Limit: limit}, true
}

// parseDate accepts YYYY-MM-DD or RFC3339. A bare date used as an upper
// bound is extended to the end of that day.
func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not a date (YYYY-MM-DD or RFC3339)", raw)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
