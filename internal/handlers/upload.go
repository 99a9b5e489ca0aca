package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/services"
)

const maxMultipartMemory = 32 << 20

var uploadFieldNames = []string{"images[]", "images", "image", "files", "file"}

type UploadHandler struct {
	uploads *services.UploadService
	// maxBody caps the whole multipart request. Zero means no cap.
	maxBody int64
}

func NewUploadHandler(uploads *services.UploadService, maxBody int64) *UploadHandler {
	return &UploadHandler{uploads: uploads, maxBody: maxBody}
}

// Upload godoc
// @Summary     Upload images into a folder
// @Description Stores each image under a generated key and records a photo row for it.
// @Description
// @Description Files are processed independently. A file that fails validation, storage or the
// @Description database insert is reported in errors and does not affect the others.
// @Description When the object was stored but the insert failed, the object is left in place and the
// @Description next reindex picks it up.
// @Description
// @Description Status: 201 when at least one file was stored; 400 when every file failed validation;
// @Description 500 when nothing was stored for any other reason.
// @Tags        upload
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       folder   formData string true "Folder name (created if missing)"
// @Param       images[] formData file   true "Images (multiple files allowed)"
// @Success     201 {object} models.UploadResponse
// @Failure     400 {object} models.UploadResponse
// @Failure     413 {object} models.ErrorResponse
// @Failure     500 {object} models.UploadResponse
// @Router      /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.maxBody > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody)
	}
	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Error:   "request too large",
				Message: fmt.Sprintf("upload requests are limited to %d bytes", tooLarge.Limit),
			})
			return
		}
		badRequest(c, "failed to parse multipart form", err.Error())
		return
	}
	form := c.Request.MultipartForm
	if form == nil {
		badRequest(c, "failed to parse multipart form", "multipart form is nil")
		return
	}

	folder := strings.TrimSpace(c.PostForm("folder"))
	if folder == "" {
		badRequest(c, "folder is required", "provide the target folder in the 'folder' form field")
		return
	}

	var headers []*multipart.FileHeader
	for _, name := range uploadFieldNames {
		if f := form.File[name]; len(f) > 0 {
			headers = f
			break
		}
	}
	if len(headers) == 0 {
		badRequest(c, "no files uploaded", fmt.Sprintf("please provide files with one of these field names: %v", uploadFieldNames))
		return
	}

	files := make([]services.UploadFile, len(headers))
	for i, fh := range headers {
		files[i] = services.UploadFile{
			Filename: fh.Filename,
			Size:     fh.Size,
			Open:     func() (io.ReadCloser, error) { return fh.Open() },
		}
	}

	response, err := h.uploads.Upload(c.Request.Context(), folder, files)
	if err != nil {
		respondError(c, err, "upload failed")
		return
	}

	status := http.StatusCreated
	if len(response.Uploaded) == 0 {
		status = http.StatusInternalServerError
		if services.OnlyValidationErrors(response) {
			status = http.StatusBadRequest
		}
	}
	c.JSON(status, response)
}
