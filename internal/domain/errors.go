package domain

import "errors"

var (
	// ErrNotFound reports an operation that targeted a section or catalog
	// item that is no longer present.
	ErrNotFound = errors.New("not found")

	// ErrInvalidPayload reports a content value that does not match the
	// section's declared type.
	ErrInvalidPayload = errors.New("content does not match section type")

	// ErrInvalidSectionType reports a section type outside the closed set.
	ErrInvalidSectionType = errors.New("unknown section type")

	// ErrToggleInFlight reports a curation toggle requested while a prior
	// toggle on the same item is still being persisted.
	ErrToggleInFlight = errors.New("curation toggle already in flight")
)
