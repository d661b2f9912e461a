package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Musiitwa-Joel/pixinity-sub001/internal/domain"
)

// SectionRepository persists homepage sections in Postgres.
//
// Schema:
//
//	CREATE TABLE homepage_sections (
//	    id         TEXT PRIMARY KEY,
//	    title      TEXT NOT NULL,
//	    type       TEXT NOT NULL,
//	    content    JSONB NOT NULL,
//	    visible    BOOLEAN NOT NULL DEFAULT true,
//	    sort_order INTEGER NOT NULL
//	);
type SectionRepository struct {
	db *sql.DB
}

func NewSectionRepository(db *sql.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

func (r *SectionRepository) LoadSections(ctx context.Context) ([]domain.Section, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, type, content, visible, sort_order
		FROM homepage_sections
		ORDER BY sort_order ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []domain.Section
	for rows.Next() {
		var (
			sec domain.Section
			raw []byte
		)
		if err := rows.Scan(&sec.ID, &sec.Title, &sec.Type, &raw, &sec.Visible, &sec.Order); err != nil {
			return nil, err
		}
		content, err := domain.DecodeContent(sec.Type, raw)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", sec.ID, err)
		}
		sec.Content = content
		sections = append(sections, sec)
	}
	return sections, rows.Err()
}

// SaveSections replaces the stored collection with the given one in a single
// transaction, so a mid-save failure never leaves a partial homepage behind.
func (r *SectionRepository) SaveSections(ctx context.Context, sections []domain.Section) error {
	for _, sec := range sections {
		if sec.Content == nil || sec.Content.Variant() != sec.Type {
			return fmt.Errorf("section %s: %w", sec.ID, domain.ErrInvalidPayload)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM homepage_sections"); err != nil {
		return err
	}
	for _, sec := range sections {
		raw, err := json.Marshal(sec.Content)
		if err != nil {
			return fmt.Errorf("section %s: encode content: %w", sec.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO homepage_sections (id, title, type, content, visible, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, sec.ID, sec.Title, string(sec.Type), raw, sec.Visible, sec.Order)
		if err != nil {
			return fmt.Errorf("section %s: %w", sec.ID, err)
		}
	}
	return tx.Commit()
}
