package services

import (
	"errors"

	"photo-portfolio-backend/internal/models"
)

func isValidation(err error) bool {
	return errors.Is(err, models.ErrValidation)
}

// OnlyValidationErrors reports whether every per-file failure of an upload
// was a validation failure.
func OnlyValidationErrors(resp *models.UploadResponse) bool {
	for _, e := range resp.Errors {
		if e.Stage != StageValidate {
			return false
		}
	}
	return len(resp.Errors) > 0
}
