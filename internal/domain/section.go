package domain

import (
	"context"
	"encoding/json"
	"fmt"
)

type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionFeatures     SectionType = "features"
	SectionCategories   SectionType = "categories"
	SectionTestimonials SectionType = "testimonials"
	SectionCTA          SectionType = "cta"
	SectionStats        SectionType = "stats"
	SectionShowcase     SectionType = "curated_showcase"
)

// Section is one ordered, typed unit of homepage content. Type is fixed at
// creation; Content always holds the payload shape matching Type.
type Section struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Type    SectionType    `json:"type"`
	Content SectionContent `json:"content"`
	Visible bool           `json:"visible"`
	Order   int            `json:"order"`
}

// Clone returns a copy whose content shares no memory with the original.
func (s Section) Clone() Section {
	cp := s
	if s.Content != nil {
		cp.Content = s.Content.Clone()
	}
	return cp
}

func (s *Section) UnmarshalJSON(data []byte) error {
	type alias struct {
		ID      string          `json:"id"`
		Title   string          `json:"title"`
		Type    SectionType     `json:"type"`
		Content json.RawMessage `json:"content"`
		Visible bool            `json:"visible"`
		Order   int             `json:"order"`
	}
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	content, err := DecodeContent(aux.Type, aux.Content)
	if err != nil {
		return fmt.Errorf("section %s: %w", aux.ID, err)
	}
	s.ID = aux.ID
	s.Title = aux.Title
	s.Type = aux.Type
	s.Content = content
	s.Visible = aux.Visible
	s.Order = aux.Order
	return nil
}

// ContentStorage is the external store the section collection loads from and
// saves to. Implementations must preserve section ids across round-trips and
// reject rows whose content shape disagrees with their type.
type ContentStorage interface {
	LoadSections(ctx context.Context) ([]Section, error)
	SaveSections(ctx context.Context, sections []Section) error
}
