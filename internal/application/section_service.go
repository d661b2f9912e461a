package application

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Musiitwa-Joel/pixinity-sub001/internal/domain"
	"github.com/google/uuid"
)

// MoveDirection is the direction of a single-step reorder.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// ValidMoveDirection reports whether dir is a known direction.
func ValidMoveDirection(dir string) bool {
	return dir == string(MoveUp) || dir == string(MoveDown)
}

// SectionService owns the ordered homepage section collection. Order values
// always form the dense sequence 1..N; every mutation that touches order goes
// through this service so the invariant lives in one place. Local mutations
// are synchronous under the mutex; storage calls run against snapshots.
type SectionService struct {
	storage domain.ContentStorage

	mu       sync.Mutex
	sections []domain.Section // kept sorted ascending by Order
	loaded   bool
}

func NewSectionService(storage domain.ContentStorage) *SectionService {
	return &SectionService{storage: storage}
}

// LoadAll replaces the in-memory collection with the stored one. On any
// failure the previously loaded state is left untouched.
func (s *SectionService) LoadAll(ctx context.Context) error {
	loaded, err := s.storage.LoadSections(ctx)
	if err != nil {
		return fmt.Errorf("load sections: %w", err)
	}
	sort.SliceStable(loaded, func(i, j int) bool { return loaded[i].Order < loaded[j].Order })
	if err := checkOrderInvariant(loaded); err != nil {
		return fmt.Errorf("load sections: %w", err)
	}
	s.mu.Lock()
	s.sections = loaded
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Loaded reports whether an initial LoadAll has succeeded.
func (s *SectionService) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Create appends a new section of the given type with schema defaults and
// order N+1. The tag must already be validated.
func (s *SectionService) Create(tag string) (domain.Section, error) {
	if !domain.ValidSectionType(tag) {
		return domain.Section{}, fmt.Errorf("%w: %s", domain.ErrInvalidSectionType, tag)
	}
	t := domain.SectionType(tag)

	s.mu.Lock()
	defer s.mu.Unlock()
	section := domain.Section{
		ID:      uuid.NewString(),
		Title:   domain.DefaultTitle(t),
		Type:    t,
		Content: domain.DefaultContent(t),
		Visible: true,
		Order:   len(s.sections) + 1,
	}
	s.sections = append(s.sections, section)
	return section.Clone(), nil
}

// Delete removes a section and shifts every later section's order down by one.
func (s *SectionService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}
	s.sections = append(s.sections[:idx], s.sections[idx+1:]...)
	for i := idx; i < len(s.sections); i++ {
		s.sections[i].Order--
	}
	return nil
}

// SetVisible flips a section's visibility flag. Order and content untouched.
func (s *SectionService) SetVisible(id string, visible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}
	s.sections[idx].Visible = visible
	return nil
}

// Rename changes a section's display title.
func (s *SectionService) Rename(id, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}
	s.sections[idx].Title = title
	return nil
}

// Move swaps a section's order with its neighbor in the given direction.
// Moving the first section up or the last one down is a no-op.
func (s *SectionService) Move(id string, dir MoveDirection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}
	var other int
	switch dir {
	case MoveUp:
		other = idx - 1
	case MoveDown:
		other = idx + 1
	default:
		return fmt.Errorf("invalid move direction %q", dir)
	}
	if other < 0 || other >= len(s.sections) {
		return nil // edge move, clamped
	}
	s.sections[idx].Order, s.sections[other].Order = s.sections[other].Order, s.sections[idx].Order
	s.sections[idx], s.sections[other] = s.sections[other], s.sections[idx]
	return nil
}

// UpdateContent replaces a section's payload wholesale. The new content's
// variant must match the section's type; a mismatch leaves the section at its
// last valid state.
func (s *SectionService) UpdateContent(id string, content domain.SectionContent) error {
	if content == nil {
		return fmt.Errorf("section %s: %w", id, domain.ErrInvalidPayload)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}
	if content.Variant() != s.sections[idx].Type {
		return fmt.Errorf("section %s: %w: got %s, want %s",
			id, domain.ErrInvalidPayload, content.Variant(), s.sections[idx].Type)
	}
	s.sections[idx].Content = content.Clone()
	return nil
}

// Get returns a copy of one section.
func (s *SectionService) Get(id string) (domain.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Section{}, fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}
	return s.sections[idx].Clone(), nil
}

// Sections returns a copy of the full collection in order.
func (s *SectionService) Sections() []domain.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// VisibleOrdered returns copies of the visible sections sorted by order. This
// is the feed the public page renderer consumes.
func (s *SectionService) VisibleOrdered() []domain.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	var visible []domain.Section
	for _, sec := range s.sections {
		if sec.Visible {
			visible = append(visible, sec.Clone())
		}
	}
	return visible
}

// SaveAll persists the full collection in one logical operation. On failure
// the in-memory state is untouched so the operator can retry.
func (s *SectionService) SaveAll(ctx context.Context) error {
	s.mu.Lock()
	snapshot := s.snapshot()
	s.mu.Unlock()
	if err := s.storage.SaveSections(ctx, snapshot); err != nil {
		return fmt.Errorf("save sections: %w", err)
	}
	return nil
}

// indexOf must be called with the mutex held.
func (s *SectionService) indexOf(id string) int {
	for i := range s.sections {
		if s.sections[i].ID == id {
			return i
		}
	}
	return -1
}

// snapshot must be called with the mutex held.
func (s *SectionService) snapshot() []domain.Section {
	cp := make([]domain.Section, len(s.sections))
	for i := range s.sections {
		cp[i] = s.sections[i].Clone()
	}
	return cp
}

// checkOrderInvariant verifies the orders of a sorted slice form exactly 1..N.
func checkOrderInvariant(sections []domain.Section) error {
	for i, sec := range sections {
		if sec.Order != i+1 {
			return fmt.Errorf("order values are not a dense 1..%d sequence (section %s has order %d at position %d)",
				len(sections), sec.ID, sec.Order, i+1)
		}
	}
	return nil
}
