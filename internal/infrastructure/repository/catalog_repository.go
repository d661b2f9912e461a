package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Musiitwa-Joel/pixinity-sub001/internal/domain"
)

// CatalogRepository reads the photo catalog and writes curated flags.
//
// Schema:
//
//	CREATE TABLE catalog_photos (
//	    id            TEXT PRIMARY KEY,
//	    title         TEXT NOT NULL,
//	    thumbnail_url TEXT NOT NULL,
//	    owner_name    TEXT NOT NULL,
//	    curated       BOOLEAN NOT NULL DEFAULT false,
//	    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListCuratableItems(ctx context.Context) ([]domain.CuratableItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, thumbnail_url, owner_name, curated
		FROM catalog_photos
		ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CuratableItem
	for rows.Next() {
		var item domain.CuratableItem
		if err := rows.Scan(&item.ID, &item.Title, &item.ThumbnailURL, &item.OwnerName, &item.Curated); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SetCurated writes one item's curated flag. The plain UPDATE makes it
// idempotent: repeating the call with the same value is not an error and
// leaves the same end state.
func (r *CatalogRepository) SetCurated(ctx context.Context, id string, curated bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE catalog_photos SET curated = $1 WHERE id = $2", curated, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("catalog item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
