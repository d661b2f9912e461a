package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Musiitwa-Joel/pixinity-sub001/internal/domain"
)

// CurationService caches the photo catalog and manages the curated flags that
// feed the homepage showcase. The catalog itself is owned by an external
// source; only the curated flag is written from here, one item at a time,
// each write persisted immediately.
type CurationService struct {
	source domain.CatalogSource

	mu       sync.Mutex
	items    []domain.CuratableItem
	loaded   bool
	inFlight map[string]bool // item id → toggle being persisted
}

func NewCurationService(source domain.CatalogSource) *CurationService {
	return &CurationService{
		source:   source,
		inFlight: make(map[string]bool),
	}
}

// Load fetches the catalog once; later calls reuse the cache until Refresh.
func (s *CurationService) Load(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Refresh(ctx)
}

// Refresh re-fetches the catalog, replacing the cache. On failure the cached
// list is left untouched.
func (s *CurationService) Refresh(ctx context.Context) error {
	items, err := s.source.ListCuratableItems(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Items returns a copy of the cached catalog, loading it on first use.
func (s *CurationService) Items(ctx context.Context) ([]domain.CuratableItem, error) {
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]domain.CuratableItem, len(s.items))
	copy(cp, s.items)
	return cp, nil
}

// Search filters the cached catalog by case-insensitive substring match on
// title and owner name. Recomputed from the full cache on every call.
func (s *CurationService) Search(ctx context.Context, query string) ([]domain.CuratableItem, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items, nil
	}
	matched := items[:0]
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.OwnerName), q) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// ToggleCurated flips one item's curated flag locally and persists the new
// value. A second toggle on the same item while the first is persisting is
// rejected with ErrToggleInFlight and changes nothing. If persistence fails
// the local flag is rolled back and the failure returned.
func (s *CurationService) ToggleCurated(ctx context.Context, id string) (bool, error) {
	if err := s.Load(ctx); err != nil {
		return false, err
	}
	s.mu.Lock()
	idx := s.itemIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return false, fmt.Errorf("catalog item %s: %w", id, domain.ErrNotFound)
	}
	if s.inFlight[id] {
		s.mu.Unlock()
		return false, fmt.Errorf("catalog item %s: %w", id, domain.ErrToggleInFlight)
	}
	s.inFlight[id] = true
	target := !s.items[idx].Curated
	s.items[idx].Curated = target
	s.mu.Unlock()

	err := s.source.SetCurated(ctx, id, target)

	s.mu.Lock()
	delete(s.inFlight, id)
	if err != nil {
		// Roll back the optimistic local flip. The item may have been
		// dropped by a refresh in the meantime; then there is nothing
		// local to restore.
		if idx := s.itemIndex(id); idx >= 0 {
			s.items[idx].Curated = !target
		}
		s.mu.Unlock()
		return !target, fmt.Errorf("persist curated flag for %s: %w", id, err)
	}
	s.mu.Unlock()
	return target, nil
}

// CuratedIDs returns the ids of the currently curated items in catalog order.
// This is the derived featured set the showcase section renders.
func (s *CurationService) CuratedIDs(ctx context.Context) ([]string, error) {
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for _, item := range s.items {
		if item.Curated {
			ids = append(ids, item.ID)
		}
	}
	return ids, nil
}

// itemIndex must be called with the mutex held.
func (s *CurationService) itemIndex(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
