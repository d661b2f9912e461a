package application

import (
	"context"
	"errors"
	"testing"

	"github.com/Musiitwa-Joel/pixinity-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	sections []domain.Section
	loadErr  error
	saveErr  error
	saves    int
}

func (f *fakeStorage) LoadSections(_ context.Context) ([]domain.Section, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	cp := make([]domain.Section, len(f.sections))
	for i := range f.sections {
		cp[i] = f.sections[i].Clone()
	}
	return cp, nil
}

func (f *fakeStorage) SaveSections(_ context.Context, sections []domain.Section) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.sections = make([]domain.Section, len(sections))
	for i := range sections {
		f.sections[i] = sections[i].Clone()
	}
	return nil
}

func orders(sections []domain.Section) []int {
	out := make([]int, len(sections))
	for i, s := range sections {
		out[i] = s.Order
	}
	return out
}

func types(sections []domain.Section) []domain.SectionType {
	out := make([]domain.SectionType, len(sections))
	for i, s := range sections {
		out[i] = s.Type
	}
	return out
}

func newServiceWith(t *testing.T, tags ...string) (*SectionService, []domain.Section) {
	t.Helper()
	svc := NewSectionService(&fakeStorage{})
	created := make([]domain.Section, 0, len(tags))
	for _, tag := range tags {
		sec, err := svc.Create(tag)
		require.NoError(t, err)
		created = append(created, sec)
	}
	return svc, created
}

func TestSectionService_CreateAppendsInOrder(t *testing.T) {
	svc, created := newServiceWith(t, "hero", "features", "cta")

	assert.Equal(t, []int{1, 2, 3}, orders(svc.Sections()))
	for i, sec := range created {
		assert.Equal(t, i+1, sec.Order)
		assert.NotEmpty(t, sec.ID)
		assert.True(t, sec.Visible)
		assert.Equal(t, sec.Type, sec.Content.Variant())
	}
}

func TestSectionService_CreateRejectsUnknownType(t *testing.T) {
	svc, _ := newServiceWith(t)

	_, err := svc.Create("carousel")
	assert.ErrorIs(t, err, domain.ErrInvalidSectionType)
	assert.Empty(t, svc.Sections())
}

func TestSectionService_DeleteRenormalizesOrders(t *testing.T) {
	svc, created := newServiceWith(t, "hero", "features", "cta", "stats")

	require.NoError(t, svc.Delete(created[1].ID))

	got := svc.Sections()
	assert.Equal(t, []int{1, 2, 3}, orders(got))
	assert.Equal(t, []domain.SectionType{"hero", "cta", "stats"}, types(got))
}

func TestSectionService_DeleteMissingIsNotFound(t *testing.T) {
	svc, _ := newServiceWith(t, "hero")

	err := svc.Delete("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, svc.Sections(), 1)
}

func TestSectionService_Move(t *testing.T) {
	tests := []struct {
		name      string
		target    int // index into created sections
		dir       MoveDirection
		wantTypes []domain.SectionType
	}{
		{name: "middle up", target: 1, dir: MoveUp, wantTypes: []domain.SectionType{"features", "hero", "cta"}},
		{name: "middle down", target: 1, dir: MoveDown, wantTypes: []domain.SectionType{"hero", "cta", "features"}},
		{name: "first up is a no-op", target: 0, dir: MoveUp, wantTypes: []domain.SectionType{"hero", "features", "cta"}},
		{name: "last down is a no-op", target: 2, dir: MoveDown, wantTypes: []domain.SectionType{"hero", "features", "cta"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, created := newServiceWith(t, "hero", "features", "cta")

			require.NoError(t, svc.Move(created[tt.target].ID, tt.dir))

			got := svc.Sections()
			assert.Equal(t, tt.wantTypes, types(got))
			assert.Equal(t, []int{1, 2, 3}, orders(got))
		})
	}
}

func TestSectionService_MoveThenDeleteScenario(t *testing.T) {
	svc, created := newServiceWith(t, "hero", "features", "cta")
	hero, features := created[0], created[1]

	require.NoError(t, svc.Move(features.ID, MoveUp))

	got := svc.Sections()
	assert.Equal(t, []domain.SectionType{"features", "hero", "cta"}, types(got))
	assert.Equal(t, []int{1, 2, 3}, orders(got))

	require.NoError(t, svc.Delete(hero.ID))

	got = svc.Sections()
	assert.Equal(t, []domain.SectionType{"features", "cta"}, types(got))
	assert.Equal(t, []int{1, 2}, orders(got))
}

func TestSectionService_OrderInvariantAcrossMutations(t *testing.T) {
	svc, created := newServiceWith(t, "hero", "features", "categories", "testimonials", "stats")

	check := func() {
		t.Helper()
		got := svc.Sections()
		for i, sec := range got {
			assert.Equal(t, i+1, sec.Order)
		}
	}

	require.NoError(t, svc.Move(created[2].ID, MoveUp))
	check()
	require.NoError(t, svc.Delete(created[0].ID))
	check()
	_, err := svc.Create("cta")
	require.NoError(t, err)
	check()
	require.NoError(t, svc.Move(created[4].ID, MoveDown))
	check()
	require.NoError(t, svc.Delete(created[3].ID))
	check()
}

func TestSectionService_SetVisibleOnlyTouchesFlag(t *testing.T) {
	svc, created := newServiceWith(t, "hero", "features")

	require.NoError(t, svc.SetVisible(created[0].ID, false))

	got := svc.Sections()
	assert.False(t, got[0].Visible)
	assert.Equal(t, []int{1, 2}, orders(got))
	assert.Equal(t, created[0].Content, got[0].Content)

	assert.ErrorIs(t, svc.SetVisible("nope", true), domain.ErrNotFound)
}

func TestSectionService_Rename(t *testing.T) {
	svc, created := newServiceWith(t, "hero")

	require.NoError(t, svc.Rename(created[0].ID, "Splash"))

	got, err := svc.Get(created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Splash", got.Title)
	assert.ErrorIs(t, svc.Rename("nope", "x"), domain.ErrNotFound)
}

func TestSectionService_UpdateContent(t *testing.T) {
	svc, created := newServiceWith(t, "hero", "features")

	newContent := domain.HeroContent{Heading: "Welcome"}
	require.NoError(t, svc.UpdateContent(created[0].ID, newContent))

	got, err := svc.Get(created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, newContent, got.Content)
}

func TestSectionService_UpdateContentRejectsWrongVariant(t *testing.T) {
	svc, created := newServiceWith(t, "hero")
	before, err := svc.Get(created[0].ID)
	require.NoError(t, err)

	err = svc.UpdateContent(created[0].ID, domain.StatsContent{Heading: "Numbers"})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	after, err := svc.Get(created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, before.Content, after.Content)
}

func TestSectionService_VisibleOrdered(t *testing.T) {
	svc, created := newServiceWith(t, "hero", "features", "cta")
	require.NoError(t, svc.SetVisible(created[1].ID, false))

	got := svc.VisibleOrdered()
	assert.Equal(t, []domain.SectionType{"hero", "cta"}, types(got))
}

func TestSectionService_LoadAll(t *testing.T) {
	storage := &fakeStorage{sections: []domain.Section{
		{ID: "b", Title: "CTA", Type: domain.SectionCTA, Content: domain.CTAContent{}, Visible: true, Order: 2},
		{ID: "a", Title: "Hero", Type: domain.SectionHero, Content: domain.HeroContent{}, Visible: true, Order: 1},
	}}
	svc := NewSectionService(storage)

	require.NoError(t, svc.LoadAll(context.Background()))

	got := svc.Sections()
	assert.Equal(t, []string{"a", "b"}, []string{got[0].ID, got[1].ID})
	assert.True(t, svc.Loaded())
}

func TestSectionService_LoadAllFailureKeepsState(t *testing.T) {
	storage := &fakeStorage{}
	svc := NewSectionService(storage)
	_, err := svc.Create("hero")
	require.NoError(t, err)

	storage.loadErr = errors.New("connection refused")
	assert.Error(t, svc.LoadAll(context.Background()))
	assert.Len(t, svc.Sections(), 1)
}

func TestSectionService_LoadAllRejectsMalformedOrders(t *testing.T) {
	storage := &fakeStorage{sections: []domain.Section{
		{ID: "a", Type: domain.SectionHero, Content: domain.HeroContent{}, Order: 1},
		{ID: "b", Type: domain.SectionCTA, Content: domain.CTAContent{}, Order: 3},
	}}
	svc := NewSectionService(storage)

	assert.Error(t, svc.LoadAll(context.Background()))
	assert.False(t, svc.Loaded())
}

func TestSectionService_SaveAll(t *testing.T) {
	storage := &fakeStorage{}
	svc := NewSectionService(storage)
	_, err := svc.Create("hero")
	require.NoError(t, err)

	require.NoError(t, svc.SaveAll(context.Background()))
	assert.Equal(t, 1, storage.saves)
	assert.Len(t, storage.sections, 1)
}

func TestSectionService_SaveAllFailureKeepsEdits(t *testing.T) {
	storage := &fakeStorage{saveErr: errors.New("connection refused")}
	svc := NewSectionService(storage)
	sec, err := svc.Create("hero")
	require.NoError(t, err)
	require.NoError(t, svc.Rename(sec.ID, "Edited"))

	assert.Error(t, svc.SaveAll(context.Background()))

	got, err := svc.Get(sec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited", got.Title)

	// Retry succeeds with the retained edits.
	storage.saveErr = nil
	require.NoError(t, svc.SaveAll(context.Background()))
	assert.Equal(t, "Edited", storage.sections[0].Title)
}

func TestSectionService_SectionsReturnsCopies(t *testing.T) {
	svc, created := newServiceWith(t, "features")

	got := svc.Sections()
	content := got[0].Content.(domain.FeaturesContent)
	content.Items[0].Title = "mutated"

	fresh, err := svc.Get(created[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh.Content.(domain.FeaturesContent).Items[0].Title)
}
