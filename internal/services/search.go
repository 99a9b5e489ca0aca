package services

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"photo-portfolio-backend/internal/embedding"
	"photo-portfolio-backend/internal/models"
)

const (
	DefaultSemanticLimit  = 10
	maxSemanticCandidates = 500
)

// SearchService ranks photos against a free-text query by embedding a short
// text descriptor of each photo.
type SearchService struct {
	repo     Repository
	embedder Embedder
}

func NewSearchService(repo Repository, embedder Embedder) *SearchService {
	return &SearchService{repo: repo, embedder: embedder}
}

func (s *SearchService) Available() bool {
	return s.embedder != nil
}

func (s *SearchService) Semantic(ctx context.Context, query string, limit int) ([]models.SemanticSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query is required: %w", models.ErrValidation)
	}
	if s.embedder == nil {
		return nil, fmt.Errorf("semantic search: %w", models.ErrUnavailable)
	}
	if limit <= 0 {
		limit = DefaultSemanticLimit
	}

	photos, err := s.repo.ListPhotos(ctx, models.PhotoFilter{Limit: maxSemanticCandidates})
	if err != nil {
		return nil, err
	}
	results := make([]models.SemanticSearchResult, 0, limit)
	if len(photos) == 0 {
		return results, nil
	}

	folders, err := s.repo.ListFolders(ctx)
	if err != nil {
		return nil, err
	}
	folderNames := make(map[int64]string, len(folders))
	for _, f := range folders {
		folderNames[f.ID] = f.Name
	}

	inputs := make([]string, 0, len(photos)+1)
	inputs = append(inputs, query)
	for _, p := range photos {
		inputs = append(inputs, Descriptor(p, folderNames[p.FolderID.Int64]))
	}

	vectors, err := s.embedder.Embed(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}

	queryVec := vectors[0]
	for i, p := range photos {
		results = append(results, models.SemanticSearchResult{
			Photo: models.NewPhotoResponse(p),
			Score: embedding.Cosine(queryVec, vectors[i+1]),
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Descriptor is the text embedded for a photo: its filename without the
// extension, its folder and its location tag.
func Descriptor(p models.Photo, folder string) string {
	name := strings.TrimSuffix(p.Filename, path.Ext(p.Filename))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)

	parts := []string{strings.TrimSpace(name)}
	if folder != "" {
		parts = append(parts, folder)
	}
	if p.LocationTag.Valid && p.LocationTag.String != "" {
		parts = append(parts, p.LocationTag.String)
	}
	return strings.Join(parts, ", ")
}
