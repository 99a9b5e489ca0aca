package services

import (
	"bytes"
	"context"
	"fmt"

	"k8s.io/klog/v2"
	"photo-portfolio-backend/internal/geo"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/objectstore"
)

const MaxAnnotateBatch = 100

// EnrichmentService fills in missing location tags, first from EXIF GPS
// coordinates and reverse geocoding, then from landmark detection. Either
// source may be nil.
type EnrichmentService struct {
	repo      Repository
	store     objectstore.Store
	geocoder  Geocoder
	landmarks LandmarkDetector
}

func NewEnrichmentService(repo Repository, store objectstore.Store, geocoder Geocoder, landmarks LandmarkDetector) *EnrichmentService {
	return &EnrichmentService{
		repo:      repo,
		store:     store,
		geocoder:  geocoder,
		landmarks: landmarks,
	}
}

// Available reports whether any location source is configured.
func (s *EnrichmentService) Available() bool {
	return s.geocoder != nil || s.landmarks != nil
}

// AnnotateLocations processes one batch of untagged photos starting at
// offset. Failures for a single photo are logged and skipped; the photo
// stays untagged.
func (s *EnrichmentService) AnnotateLocations(ctx context.Context, batchSize, offset int) (*models.AnnotateResult, error) {
	if batchSize < 1 || batchSize > MaxAnnotateBatch {
		return nil, fmt.Errorf("batch_size must be between 1 and %d: %w", MaxAnnotateBatch, models.ErrValidation)
	}
	if offset < 0 {
		return nil, fmt.Errorf("offset must not be negative: %w", models.ErrValidation)
	}

	total, err := s.repo.CountUntagged(ctx)
	if err != nil {
		return nil, err
	}
	photos, err := s.repo.ListUntagged(ctx, batchSize, offset)
	if err != nil {
		return nil, err
	}

	result := &models.AnnotateResult{TotalUntagged: total}
	for _, photo := range photos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Processed++

		tag := s.locate(ctx, photo)
		if tag == "" {
			continue
		}
		if err := s.repo.SetLocationTag(ctx, photo.ID, tag); err != nil {
			klog.V(1).Infof("Annotate: failed to tag photo %d: %v", photo.ID, err)
			continue
		}
		klog.V(1).Infof("Annotate: photo %d tagged %q", photo.ID, tag)
		result.UpdatedThisBatch++
	}

	remaining, err := s.repo.CountUntagged(ctx)
	if err != nil {
		return nil, err
	}
	result.RemainingUntagged = remaining
	return result, nil
}

func (s *EnrichmentService) locate(ctx context.Context, photo models.Photo) string {
	if !photo.StoragePath.Valid || photo.StoragePath.String == "" {
		return ""
	}
	data, err := s.store.Download(ctx, photo.StoragePath.String)
	if err != nil {
		klog.V(1).Infof("Annotate: failed to download %s: %v", photo.StoragePath.String, err)
		return ""
	}

	if s.geocoder != nil {
		lat, lon, err := geo.ExtractGPS(bytes.NewReader(data))
		if err == nil {
			place, err := s.geocoder.Reverse(ctx, lat, lon)
			if err != nil {
				klog.V(1).Infof("Annotate: reverse geocoding failed for photo %d: %v", photo.ID, err)
			} else if place != "" {
				return place
			}
		}
	}

	if s.landmarks != nil {
		name, err := s.landmarks.Detect(ctx, data, photo.MimeType.String)
		if err != nil {
			klog.V(1).Infof("Annotate: landmark detection failed for photo %d: %v", photo.ID, err)
			return ""
		}
		return name
	}
	return ""
}
