package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Musiitwa-Joel/pixinity-sub001/internal/domain"
)

// ErrNoActiveEdit reports an edit intent against a section with no open
// editing session.
var ErrNoActiveEdit = errors.New("no active edit session for section")

// ComposerService orchestrates homepage editing. Edits never touch the
// section collection directly: BeginEdit stages a deep copy of the target
// content, intents transform the staged copy through the matching variant
// editor, and only CommitEdit merges the result back and persists. Cancelling
// (or an editor error) leaves the authoritative collection untouched.
type ComposerService struct {
	sections *SectionService
	curation *CurationService

	mu     sync.Mutex
	staged map[string]domain.SectionContent // section id → staged copy
}

func NewComposerService(sections *SectionService, curation *CurationService) *ComposerService {
	return &ComposerService{
		sections: sections,
		curation: curation,
		staged:   make(map[string]domain.SectionContent),
	}
}

// BeginEdit opens an editing session for a section and returns the staged
// copy. Reopening a session discards any previous staged state for that
// section and starts from the stored content again.
func (s *ComposerService) BeginEdit(id string) (domain.SectionContent, error) {
	section, err := s.sections.Get(id)
	if err != nil {
		return nil, err
	}
	staged := section.Content.Clone()
	s.mu.Lock()
	s.staged[id] = staged
	s.mu.Unlock()
	return staged, nil
}

// StagedContent returns the current staged copy for a section.
func (s *ComposerService) StagedContent(id string) (domain.SectionContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	staged, ok := s.staged[id]
	if !ok {
		return nil, fmt.Errorf("section %s: %w", id, ErrNoActiveEdit)
	}
	return staged, nil
}

// ApplyIntent routes one edit intent to the editor matching the section's
// type and replaces the staged copy with the result. An editor error leaves
// the staged copy as it was.
func (s *ComposerService) ApplyIntent(id string, intent EditIntent) (domain.SectionContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	staged, ok := s.staged[id]
	if !ok {
		return nil, fmt.Errorf("section %s: %w", id, ErrNoActiveEdit)
	}
	editor, err := EditorFor(staged.Variant())
	if err != nil {
		return nil, err
	}
	next, err := editor.Apply(staged, intent)
	if err != nil {
		return staged, err
	}
	s.staged[id] = next
	return next, nil
}

// CancelEdit discards the staged copy. Cancelling a session that does not
// exist is a no-op.
func (s *ComposerService) CancelEdit(id string) {
	s.mu.Lock()
	delete(s.staged, id)
	s.mu.Unlock()
}

// CommitEdit writes the staged copy into the section collection and persists
// the whole collection. The session closes once the in-memory write succeeds;
// a persistence failure is returned but the committed edit stays in memory so
// the operator can retry the save without re-entering it.
func (s *ComposerService) CommitEdit(ctx context.Context, id string) error {
	s.mu.Lock()
	staged, ok := s.staged[id]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("section %s: %w", id, ErrNoActiveEdit)
	}
	if err := s.sections.UpdateContent(id, staged); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.staged, id)
	s.mu.Unlock()
	return s.sections.SaveAll(ctx)
}

// PublicSections assembles the public render feed: visible sections in order,
// with every curated-showcase payload carrying the derived featured id set.
// The catalog is loaded lazily, and only when the feed contains a showcase.
func (s *ComposerService) PublicSections(ctx context.Context) ([]domain.Section, error) {
	visible := s.sections.VisibleOrdered()
	for i := range visible {
		if visible[i].Type != domain.SectionShowcase {
			continue
		}
		ids, err := s.curation.CuratedIDs(ctx)
		if err != nil {
			return nil, err
		}
		content := visible[i].Content.(domain.ShowcaseContent)
		content.ItemIDs = ids
		visible[i].Content = content
	}
	return visible, nil
}
