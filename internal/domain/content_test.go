package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeContent_RoundTripsEveryVariant(t *testing.T) {
	tests := []struct {
		name    string
		content SectionContent
	}{
		{"hero", HeroContent{Heading: "h", PrimaryCTA: CTALink{Text: "go", Link: "/go"}, BackgroundURL: "https://cdn/x.jpg"}},
		{"features", FeaturesContent{Heading: "h", Items: []FeatureItem{{Title: "t", Description: "d", IconKey: "i"}}}},
		{"categories", CategoriesContent{Heading: "h", Items: []CategoryItem{{Name: "n", ImageURL: "u", Link: "l"}}}},
		{"testimonials", TestimonialsContent{Heading: "h", Items: []TestimonialItem{{Name: "n", Role: "r", Quote: "q", AvatarURL: "a"}}}},
		{"cta", CTAContent{Heading: "h", CTA: CTALink{Text: "go", Link: "/go"}}},
		{"stats", StatsContent{Heading: "h", Items: []StatItem{{Value: "1M+", Description: "d"}}}},
		{"curated_showcase", ShowcaseContent{Heading: "h", Subheading: "s", ItemIDs: []string{"a", "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.content)
			require.NoError(t, err)

			got, err := DecodeContent(tt.content.Variant(), raw)
			require.NoError(t, err)
			assert.Equal(t, tt.content, got)
		})
	}
}

func TestDecodeContent_RejectsForeignShape(t *testing.T) {
	// A stats payload must not sneak through as hero content.
	raw, err := json.Marshal(StatsContent{Heading: "h", Items: []StatItem{{Value: "1"}}})
	require.NoError(t, err)

	_, err = DecodeContent(SectionHero, raw)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestDecodeContent_UnknownTypeAndEmptyPayload(t *testing.T) {
	_, err := DecodeContent("carousel", []byte(`{}`))
	assert.ErrorIs(t, err, ErrInvalidSectionType)

	_, err = DecodeContent(SectionHero, nil)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestSection_JSONRoundTrip(t *testing.T) {
	section := Section{
		ID:      "s1",
		Title:   "Features",
		Type:    SectionFeatures,
		Content: FeaturesContent{Heading: "h", Items: []FeatureItem{{Title: "t"}}},
		Visible: true,
		Order:   2,
	}

	raw, err := json.Marshal(section)
	require.NoError(t, err)

	var got Section
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, section, got)
}

func TestSection_UnmarshalRejectsMismatchedContent(t *testing.T) {
	raw := []byte(`{"id":"s1","title":"Hero","type":"hero","content":{"items":[]},"visible":true,"order":1}`)

	var got Section
	assert.ErrorIs(t, json.Unmarshal(raw, &got), ErrInvalidPayload)
}

func TestClone_SharesNoItemMemory(t *testing.T) {
	original := FeaturesContent{Items: []FeatureItem{{Title: "keep"}}}

	clone := original.Clone().(FeaturesContent)
	clone.Items[0].Title = "mutated"

	assert.Equal(t, "keep", original.Items[0].Title)

	showcase := ShowcaseContent{ItemIDs: []string{"a"}}
	showcaseClone := showcase.Clone().(ShowcaseContent)
	showcaseClone.ItemIDs[0] = "b"
	assert.Equal(t, "a", showcase.ItemIDs[0])
}
