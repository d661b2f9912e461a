package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SectionContent is the variant payload of a section. Exactly one concrete
// type exists per SectionType; the tag and the shape are bound at construction
// and never change independently.
type SectionContent interface {
	Variant() SectionType
	Clone() SectionContent
}

type CTALink struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type HeroContent struct {
	Heading       string  `json:"heading"`
	Subheading    string  `json:"subheading"`
	PrimaryCTA    CTALink `json:"primary_cta"`
	SecondaryCTA  CTALink `json:"secondary_cta"`
	BackgroundURL string  `json:"background_url"`
}

func (HeroContent) Variant() SectionType { return SectionHero }
func (c HeroContent) Clone() SectionContent {
	return c
}

type FeatureItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IconKey     string `json:"icon_key"`
}

type FeaturesContent struct {
	Heading string        `json:"heading"`
	Items   []FeatureItem `json:"items"`
}

func (FeaturesContent) Variant() SectionType { return SectionFeatures }
func (c FeaturesContent) Clone() SectionContent {
	cp := c
	cp.Items = make([]FeatureItem, len(c.Items))
	copy(cp.Items, c.Items)
	return cp
}

type CategoryItem struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Link     string `json:"link"`
}

type CategoriesContent struct {
	Heading string         `json:"heading"`
	Items   []CategoryItem `json:"items"`
}

func (CategoriesContent) Variant() SectionType { return SectionCategories }
func (c CategoriesContent) Clone() SectionContent {
	cp := c
	cp.Items = make([]CategoryItem, len(c.Items))
	copy(cp.Items, c.Items)
	return cp
}

type TestimonialItem struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Quote     string `json:"quote"`
	AvatarURL string `json:"avatar_url"`
}

type TestimonialsContent struct {
	Heading string            `json:"heading"`
	Items   []TestimonialItem `json:"items"`
}

func (TestimonialsContent) Variant() SectionType { return SectionTestimonials }
func (c TestimonialsContent) Clone() SectionContent {
	cp := c
	cp.Items = make([]TestimonialItem, len(c.Items))
	copy(cp.Items, c.Items)
	return cp
}

type CTAContent struct {
	Heading       string  `json:"heading"`
	Subheading    string  `json:"subheading"`
	CTA           CTALink `json:"cta"`
	BackgroundURL string  `json:"background_url"`
}

func (CTAContent) Variant() SectionType { return SectionCTA }
func (c CTAContent) Clone() SectionContent {
	return c
}

type StatItem struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

type StatsContent struct {
	Heading string     `json:"heading"`
	Items   []StatItem `json:"items"`
}

func (StatsContent) Variant() SectionType { return SectionStats }
func (c StatsContent) Clone() SectionContent {
	cp := c
	cp.Items = make([]StatItem, len(c.Items))
	copy(cp.Items, c.Items)
	return cp
}

// ShowcaseContent holds the curated-photo showcase. ItemIDs is derived from
// the photo catalog's curated flags, never authored directly.
type ShowcaseContent struct {
	Heading    string   `json:"heading"`
	Subheading string   `json:"subheading"`
	ItemIDs    []string `json:"item_ids"`
}

func (ShowcaseContent) Variant() SectionType { return SectionShowcase }
func (c ShowcaseContent) Clone() SectionContent {
	cp := c
	cp.ItemIDs = make([]string, len(c.ItemIDs))
	copy(cp.ItemIDs, c.ItemIDs)
	return cp
}

// DecodeContent parses a raw content payload as the shape belonging to t.
// Unknown fields are rejected so a payload stored under the wrong type cannot
// silently coerce into another variant.
func DecodeContent(t SectionType, raw []byte) (SectionContent, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty content for type %s", ErrInvalidPayload, t)
	}
	decode := func(v any) error {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	}
	var (
		content SectionContent
		err     error
	)
	switch t {
	case SectionHero:
		var c HeroContent
		err = decode(&c)
		content = c
	case SectionFeatures:
		var c FeaturesContent
		err = decode(&c)
		content = c
	case SectionCategories:
		var c CategoriesContent
		err = decode(&c)
		content = c
	case SectionTestimonials:
		var c TestimonialsContent
		err = decode(&c)
		content = c
	case SectionCTA:
		var c CTAContent
		err = decode(&c)
		content = c
	case SectionStats:
		var c StatsContent
		err = decode(&c)
		content = c
	case SectionShowcase:
		var c ShowcaseContent
		err = decode(&c)
		content = c
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidSectionType, t)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s content: %v", ErrInvalidPayload, t, err)
	}
	return content, nil
}
