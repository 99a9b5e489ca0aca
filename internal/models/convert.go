package models

func NewPhotoResponse(p Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		Filename:    p.Filename,
		URL:         p.URL,
		MimeType:    p.MimeType.String,
		StoragePath: p.StoragePath.String,
		LocationTag: p.LocationTag.String,
		UploadedAt:  p.UploadedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.FolderID.Valid {
		id := p.FolderID.Int64
		resp.FolderID = &id
	}
	if p.Width.Valid {
		w := p.Width.Int32
		resp.Width = &w
	}
	if p.Height.Valid {
		h := p.Height.Int32
		resp.Height = &h
	}
	if p.FileSize.Valid {
		size := p.FileSize.Int64
		resp.FileSize = &size
	}
	return resp
}

func NewPhotoResponses(photos []Photo) []PhotoResponse {
	out := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		out[i] = NewPhotoResponse(p)
	}
	return out
}

func NewFolderResponse(f Folder, photos []Photo) FolderResponse {
	return FolderResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description.String,
		PhotoCount:  len(photos),
		Photos:      NewPhotoResponses(photos),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
