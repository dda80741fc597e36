package domain

import (
	"strings"
	"time"
)

// DefaultSnoozeInterval is the base duration used both for the initial
// threshold and for the "later" extension.
const DefaultSnoozeInterval = 7 * 24 * time.Hour

// DefaultLevel is the authorization level required to see a nudge unless
// the subject overrides it.
const DefaultLevel = "admin"

// Subject represents a tracked entity for which a review nudge is gated,
// e.g. a plugin. A Subject with an empty Slug or Name is inert: it never
// gates visible and its actions are no-ops.
type Subject struct {
	Slug           string        // unique identifier, e.g. "demo-plugin"
	Name           string        // display name
	Prefix         string        // storage key prefix, derived from Slug unless set
	SnoozeInterval time.Duration // base duration for threshold and "later" extension
	Screens        []string      // allowed viewing contexts, empty = unrestricted
	RequiredLevel  string        // authorization level required to see the nudge
	Classes        string        // extra presentation classes
	Message        string        // nudge message text, may contain limited HTML
	ReviewLabel    string        // label for the review link, empty suppresses it
	LaterLabel     string        // label for the snooze action, empty suppresses it
	DismissLabel   string        // label for the dismiss action, empty suppresses it
	TextDomain     string        // translation text domain, cosmetic only
}

// Valid reports whether the subject can ever gate visible. Subjects with
// an empty slug or name are deliberately inert rather than erroneous, so
// registration can never abort host startup.
func (s *Subject) Valid() bool {
	return s.Slug != "" && s.Name != ""
}

// DerivePrefix returns the storage key prefix for a slug, replacing dashes
// with underscores to keep keys shell- and SQL-friendly.
func DerivePrefix(slug string) string {
	return strings.ReplaceAll(slug, "-", "_")
}

// Action is a viewer response to a visible nudge.
type Action string

// known actions, anything else is a silent no-op
const (
	ActionLater   Action = "later"
	ActionDismiss Action = "dismiss"
)
