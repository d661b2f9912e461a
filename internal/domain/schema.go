package domain

import "fmt"

// sectionSchema holds the creation-time defaults for one section variant.
type sectionSchema struct {
	title   string
	content func() SectionContent
}

var sectionSchemas = map[SectionType]sectionSchema{
	SectionHero: {
		title: "Hero Banner",
		content: func() SectionContent {
			return HeroContent{
				Heading:      "Discover the world through photography",
				Subheading:   "Share your best shots with a community that cares",
				PrimaryCTA:   CTALink{Text: "Get started", Link: "/signup"},
				SecondaryCTA: CTALink{Text: "Browse photos", Link: "/explore"},
			}
		},
	},
	SectionFeatures: {
		title: "Features",
		content: func() SectionContent {
			return FeaturesContent{
				Heading: "Why photographers choose us",
				Items: []FeatureItem{
					{Title: "High-resolution uploads", Description: "Your work, pixel for pixel", IconKey: "upload"},
				},
			}
		},
	},
	SectionCategories: {
		title: "Categories",
		content: func() SectionContent {
			return CategoriesContent{
				Heading: "Explore by category",
				Items: []CategoryItem{
					{Name: "Nature", Link: "/category/nature"},
				},
			}
		},
	},
	SectionTestimonials: {
		title: "Testimonials",
		content: func() SectionContent {
			return TestimonialsContent{
				Heading: "What our community says",
				Items: []TestimonialItem{
					{Name: "Jane Doe", Role: "Landscape photographer", Quote: "The best home my photos ever had."},
				},
			}
		},
	},
	SectionCTA: {
		title: "Call to Action",
		content: func() SectionContent {
			return CTAContent{
				Heading:    "Ready to share your story?",
				Subheading: "Join thousands of photographers today",
				CTA:        CTALink{Text: "Create account", Link: "/signup"},
			}
		},
	},
	SectionStats: {
		title: "Statistics",
		content: func() SectionContent {
			return StatsContent{
				Heading: "Our community in numbers",
				Items: []StatItem{
					{Value: "1M+", Description: "Photos shared"},
				},
			}
		},
	},
	SectionShowcase: {
		title: "Featured Photos",
		content: func() SectionContent {
			return ShowcaseContent{
				Heading:    "Featured photos",
				Subheading: "Hand-picked by our editors",
			}
		},
	},
}

// ValidSectionType reports whether tag names a known section variant. Handlers
// must gate user input through this before reaching the schema registry.
func ValidSectionType(tag string) bool {
	_, ok := sectionSchemas[SectionType(tag)]
	return ok
}

// DefaultTitle returns the creation-time title for t. Panics on an unknown
// type: callers validate tags first, so reaching here with one is a bug.
func DefaultTitle(t SectionType) string {
	schema, ok := sectionSchemas[t]
	if !ok {
		panic(fmt.Sprintf("no schema for section type %q", t))
	}
	return schema.title
}

// DefaultContent returns a fresh default payload for t. Panics on an unknown
// type, same contract as DefaultTitle.
func DefaultContent(t SectionType) SectionContent {
	schema, ok := sectionSchemas[t]
	if !ok {
		panic(fmt.Sprintf("no schema for section type %q", t))
	}
	return schema.content()
}
