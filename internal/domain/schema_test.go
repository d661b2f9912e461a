package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaDefaults_MatchTheirVariant(t *testing.T) {
	for variant := range sectionSchemas {
		assert.NotEmpty(t, DefaultTitle(variant))
		content := DefaultContent(variant)
		require.NotNil(t, content)
		assert.Equal(t, variant, content.Variant())
	}
}

func TestSchemaDefaults_ReturnFreshValues(t *testing.T) {
	first := DefaultContent(SectionFeatures).(FeaturesContent)
	first.Items[0].Title = "mutated"

	second := DefaultContent(SectionFeatures).(FeaturesContent)
	assert.NotEqual(t, "mutated", second.Items[0].Title)
}

func TestSchema_ShowcaseDefaultHasNoAuthoredItems(t *testing.T) {
	content := DefaultContent(SectionShowcase).(ShowcaseContent)
	assert.Empty(t, content.ItemIDs)
}

func TestValidSectionType(t *testing.T) {
	for _, tag := range []string{"hero", "features", "categories", "testimonials", "cta", "stats", "curated_showcase"} {
		assert.True(t, ValidSectionType(tag), tag)
	}
	assert.False(t, ValidSectionType("carousel"))
	assert.False(t, ValidSectionType(""))
}

func TestSchema_PanicsOnUnknownType(t *testing.T) {
	assert.Panics(t, func() { DefaultTitle("carousel") })
	assert.Panics(t, func() { DefaultContent("carousel") })
}
