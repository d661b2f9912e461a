package application

import (
	"fmt"

	"github.com/Musiitwa-Joel/pixinity-sub001/internal/domain"
)

// EditIntent is one structural edit against a staged section payload.
type EditIntent struct {
	Op    string `json:"op"`
	Field string `json:"field"`
	Index int    `json:"index"`
	Value string `json:"value"`
}

const (
	OpSetField     = "set_field"
	OpAppendItem   = "append_item"
	OpRemoveItem   = "remove_item"
	OpSetItemField = "set_item_field"
)

// VariantEditor transforms one variant's payload. Apply never mutates its
// input; it returns a new payload or an error with the input's value intact.
// A payload of any other variant is rejected with ErrInvalidPayload.
type VariantEditor interface {
	Variant() domain.SectionType
	Apply(content domain.SectionContent, intent EditIntent) (domain.SectionContent, error)
}

var editors = map[domain.SectionType]VariantEditor{
	domain.SectionHero:         heroEditor{},
	domain.SectionFeatures:     featuresEditor{},
	domain.SectionCategories:   categoriesEditor{},
	domain.SectionTestimonials: testimonialsEditor{},
	domain.SectionCTA:          ctaEditor{},
	domain.SectionStats:        statsEditor{},
	domain.SectionShowcase:     showcaseEditor{},
}

// EditorFor returns the editor for a section type.
func EditorFor(t domain.SectionType) (VariantEditor, error) {
	ed, ok := editors[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSectionType, t)
	}
	return ed, nil
}

func wrongShape(want domain.SectionType, got domain.SectionContent) error {
	if got == nil {
		return fmt.Errorf("%w: %s editor got nil content", domain.ErrInvalidPayload, want)
	}
	return fmt.Errorf("%w: %s editor got %s content", domain.ErrInvalidPayload, want, got.Variant())
}

func unknownField(t domain.SectionType, field string) error {
	return fmt.Errorf("unknown %s field %q", t, field)
}

func unsupportedOp(t domain.SectionType, op string) error {
	return fmt.Errorf("%s sections do not support %s", t, op)
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("item index %d out of range [0,%d)", index, length)
	}
	return nil
}

// ── hero ───────────────────────────────────────────────────

type heroEditor struct{}

func (heroEditor) Variant() domain.SectionType { return domain.SectionHero }

func (heroEditor) Apply(content domain.SectionContent, intent EditIntent) (domain.SectionContent, error) {
	c, ok := content.(domain.HeroContent)
	if !ok {
		return content, wrongShape(domain.SectionHero, content)
	}
	if intent.Op != OpSetField {
		return content, unsupportedOp(domain.SectionHero, intent.Op)
	}
	switch intent.Field {
	case "heading":
		c.Heading = intent.Value
	case "subheading":
		c.Subheading = intent.Value
	case "primary_cta_text":
		c.PrimaryCTA.Text = intent.Value
	case "primary_cta_link":
		c.PrimaryCTA.Link = intent.Value
	case "secondary_cta_text":
		c.SecondaryCTA.Text = intent.Value
	case "secondary_cta_link":
		c.SecondaryCTA.Link = intent.Value
	case "background_url":
		c.BackgroundURL = intent.Value
	default:
		return content, unknownField(domain.SectionHero, intent.Field)
	}
	return c, nil
}

// ── features ───────────────────────────────────────────────

type featuresEditor struct{}

func (featuresEditor) Variant() domain.SectionType { return domain.SectionFeatures }

func (featuresEditor) Apply(content domain.SectionContent, intent EditIntent) (domain.SectionContent, error) {
	c, ok := content.(domain.FeaturesContent)
	if !ok {
		return content, wrongShape(domain.SectionFeatures, content)
	}
	c = c.Clone().(domain.FeaturesContent)
	switch intent.Op {
	case OpSetField:
		if intent.Field != "heading" {
			return content, unknownField(domain.SectionFeatures, intent.Field)
		}
		c.Heading = intent.Value
	case OpAppendItem:
		c.Items = append(c.Items, domain.FeatureItem{Title: "New feature", IconKey: "star"})
	case OpRemoveItem:
		if err := checkIndex(intent.Index, len(c.Items)); err != nil {
			return content, err
		}
		c.Items = append(c.Items[:intent.Index], c.Items[intent.Index+1:]...)
	case OpSetItemField:
		if err := checkIndex(intent.Index, len(c.Items)); err != nil {
			return content, err
		}
		switch intent.Field {
		case "title":
			c.Items[intent.Index].Title = intent.Value
		case "description":
			c.Items[intent.Index].Description = intent.Value
		case "icon_key":
			c.Items[intent.Index].IconKey = intent.Value
		default:
			return content, unknownField(domain.SectionFeatures, intent.Field)
		}
	default:
		return content, unsupportedOp(domain.SectionFeatures, intent.Op)
	}
	return c, nil
}

// ── categories ─────────────────────────────────────────────

type categoriesEditor struct{}

func (categoriesEditor) Variant() domain.SectionType { return domain.SectionCategories }

func (categoriesEditor) Apply(content domain.SectionContent, intent EditIntent) (domain.SectionContent, error) {
	c, ok := content.(domain.CategoriesContent)
	if !ok {
		return content, wrongShape(domain.SectionCategories, content)
	}
	c = c.Clone().(domain.CategoriesContent)
	switch intent.Op {
	case OpSetField:
		if intent.Field != "heading" {
			return content, unknownField(domain.SectionCategories, intent.Field)
		}
		c.Heading = intent.Value
	case OpAppendItem:
		c.Items = append(c.Items, domain.CategoryItem{Name: "New category"})
	case OpRemoveItem:
		if err := checkIndex(intent.Index, len(c.Items)); err != nil {
			return content, err
		}
		c.Items = append(c.Items[:intent.Index], c.Items[intent.Index+1:]...)
	case OpSetItemField:
		if err := checkIndex(intent.Index, len(c.Items)); err != nil {
			return content, err
		}
		switch intent.Field {
		case "name":
			c.Items[intent.Index].Name = intent.Value
		case "image_url":
			c.Items[intent.Index].ImageURL = intent.Value
		case "link":
			c.Items[intent.Index].Link = intent.Value
		default:
			return content, unknownField(domain.SectionCategories, intent.Field)
		}
	default:
		return content, unsupportedOp(domain.SectionCategories, intent.Op)
	}
	return c, nil
}

// ── testimonials ───────────────────────────────────────────

type testimonialsEditor struct{}

func (testimonialsEditor) Variant() domain.SectionType { return domain.SectionTestimonials }

func (testimonialsEditor) Apply(content domain.SectionContent, intent EditIntent) (domain.SectionContent, error) {
	c, ok := content.(domain.TestimonialsContent)
	if !ok {
		return content, wrongShape(domain.SectionTestimonials, content)
	}
	c = c.Clone().(domain.TestimonialsContent)
	switch intent.Op {
	case OpSetField:
		if intent.Field != "heading" {
			return content, unknownField(domain.SectionTestimonials, intent.Field)
		}
		c.Heading = intent.Value
	case OpAppendItem:
		c.Items = append(c.Items, domain.TestimonialItem{Name: "New member"})
	case OpRemoveItem:
		if err := checkIndex(intent.Index, len(c.Items)); err != nil {
			return content, err
		}
		c.Items = append(c.Items[:intent.Index], c.Items[intent.Index+1:]...)
	case OpSetItemField:
		if err := checkIndex(intent.Index, len(c.Items)); err != nil {
			return content, err
		}
		switch intent.Field {
		case "name":
			c.Items[intent.Index].Name = intent.Value
		case "role":
			c.Items[intent.Index].Role = intent.Value
		case "quote":
			c.Items[intent.Index].Quote = intent.Value
		case "avatar_url":
			c.Items[intent.Index].AvatarURL = intent.Value
		default:
			return content, unknownField(domain.SectionTestimonials, intent.Field)
		}
	default:
		return content, unsupportedOp(domain.SectionTestimonials, intent.Op)
	}
	return c, nil
}

// ── cta ────────────────────────────────────────────────────

type ctaEditor struct{}

func (ctaEditor) Variant() domain.SectionType { return domain.SectionCTA }

func (ctaEditor) Apply(content domain.SectionContent, intent EditIntent) (domain.SectionContent, error) {
	c, ok := content.(domain.CTAContent)
	if !ok {
		return content, wrongShape(domain.SectionCTA, content)
	}
	if intent.Op != OpSetField {
		return content, unsupportedOp(domain.SectionCTA, intent.Op)
	}
	switch intent.Field {
	case "heading":
		c.Heading = intent.Value
	case "subheading":
		c.Subheading = intent.Value
	case "cta_text":
		c.CTA.Text = intent.Value
	case "cta_link":
		c.CTA.Link = intent.Value
	case "background_url":
		c.BackgroundURL = intent.Value
	default:
		return content, unknownField(domain.SectionCTA, intent.Field)
	}
	return c, nil
}

// ── stats ──────────────────────────────────────────────────

type statsEditor struct{}

func (statsEditor) Variant() domain.SectionType { return domain.SectionStats }

func (statsEditor) Apply(content domain.SectionContent, intent EditIntent) (domain.SectionContent, error) {
	c, ok := content.(domain.StatsContent)
	if !ok {
		return content, wrongShape(domain.SectionStats, content)
	}
	c = c.Clone().(domain.StatsContent)
	switch intent.Op {
	case OpSetField:
		if intent.Field != "heading" {
			return content, unknownField(domain.SectionStats, intent.Field)
		}
		c.Heading = intent.Value
	case OpAppendItem:
		c.Items = append(c.Items, domain.StatItem{Value: "0"})
	case OpRemoveItem:
		if err := checkIndex(intent.Index, len(c.Items)); err != nil {
			return content, err
		}
		c.Items = append(c.Items[:intent.Index], c.Items[intent.Index+1:]...)
	case OpSetItemField:
		if err := checkIndex(intent.Index, len(c.Items)); err != nil {
			return content, err
		}
		switch intent.Field {
		case "value":
			c.Items[intent.Index].Value = intent.Value
		case "description":
			c.Items[intent.Index].Description = intent.Value
		default:
			return content, unknownField(domain.SectionStats, intent.Field)
		}
	default:
		return content, unsupportedOp(domain.SectionStats, intent.Op)
	}
	return c, nil
}

// ── curated showcase ───────────────────────────────────────

// showcaseEditor only edits the scalar fields. The featured id list is derived
// from catalog curation flags and is never authored through an edit intent.
type showcaseEditor struct{}

func (showcaseEditor) Variant() domain.SectionType { return domain.SectionShowcase }

func (showcaseEditor) Apply(content domain.SectionContent, intent EditIntent) (domain.SectionContent, error) {
	c, ok := content.(domain.ShowcaseContent)
	if !ok {
		return content, wrongShape(domain.SectionShowcase, content)
	}
	if intent.Op != OpSetField {
		return content, fmt.Errorf("%w: showcase items are curated from the catalog, not edited here", domain.ErrInvalidPayload)
	}
	c = c.Clone().(domain.ShowcaseContent)
	switch intent.Field {
	case "heading":
		c.Heading = intent.Value
	case "subheading":
		c.Subheading = intent.Value
	default:
		return content, unknownField(domain.SectionShowcase, intent.Field)
	}
	return c, nil
}
