package domain

import "context"

// CuratableItem is a photo from the external catalog. Only the Curated flag is
// ever written from here; the descriptive fields are sourced read-only.
type CuratableItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
	OwnerName    string `json:"owner_name"`
	Curated      bool   `json:"curated"`
}

// CatalogSource is the external photo catalog. SetCurated must be idempotent:
// repeating a call with the same id and value leaves the same end state.
type CatalogSource interface {
	ListCuratableItems(ctx context.Context) ([]CuratableItem, error)
	SetCurated(ctx context.Context, id string, curated bool) error
}
