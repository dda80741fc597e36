package gate

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/umputun/nudger/pkg/domain"
)

// SubjectConfig holds the optional per-subject settings passed to Register.
// Zero values fall back to defaults.
type SubjectConfig struct {
	Prefix         string
	SnoozeInterval time.Duration
	Screens        []string
	RequiredLevel  string
	Classes        string
	Message        string
	ReviewLabel    string
	LaterLabel     string
	DismissLabel   string
	TextDomain     string
}

// Registry keeps one Subject instance per slug for the process lifetime.
// Registration is idempotent, the first call for a slug wins and repeated
// calls return the original instance with their config ignored.
type Registry struct {
	mu       sync.Mutex
	subjects map[string]*domain.Subject
}

// NewRegistry makes an empty registry
func NewRegistry() *Registry {
	return &Registry{subjects: map[string]*domain.Subject{}}
}

// Register creates a subject for slug or returns the existing one. A subject
// with an empty slug or name is stored as-is and stays inert, registration
// never fails because it may run before the host is fully initialized.
func (r *Registry) Register(slug, name string, cfg SubjectConfig) *domain.Subject {
	r.mu.Lock()
	defer r.mu.Unlock()

	if subj, ok := r.subjects[slug]; ok {
		return subj
	}

	subj := &domain.Subject{
		Slug:           slug,
		Name:           name,
		Prefix:         cfg.Prefix,
		SnoozeInterval: cfg.SnoozeInterval,
		Screens:        cfg.Screens,
		RequiredLevel:  cfg.RequiredLevel,
		Classes:        cfg.Classes,
		Message:        cfg.Message,
		ReviewLabel:    cfg.ReviewLabel,
		LaterLabel:     cfg.LaterLabel,
		DismissLabel:   cfg.DismissLabel,
		TextDomain:     cfg.TextDomain,
	}
	applyDefaults(subj)

	if !subj.Valid() {
		log.Printf("[WARN] subject with empty slug or name registered, will never show")
	}

	r.subjects[slug] = subj
	return subj
}

// Get returns the subject for slug if registered
func (r *Registry) Get(slug string) (*domain.Subject, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subj, ok := r.subjects[slug]
	return subj, ok
}

// All returns registered subjects sorted by slug
func (r *Registry) All() []*domain.Subject {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]*domain.Subject, 0, len(r.subjects))
	for _, subj := range r.subjects {
		res = append(res, subj)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Slug < res[j].Slug })
	return res
}

// applyDefaults fills zero-value subject fields
func applyDefaults(subj *domain.Subject) {
	if subj.Prefix == "" {
		subj.Prefix = domain.DerivePrefix(subj.Slug)
	}
	if subj.SnoozeInterval == 0 {
		subj.SnoozeInterval = domain.DefaultSnoozeInterval
	}
	if subj.RequiredLevel == "" {
		subj.RequiredLevel = domain.DefaultLevel
	}
	if subj.Message == "" && subj.Name != "" {
		subj.Message = fmt.Sprintf("Enjoying %s? Please consider leaving a review, it helps a lot.", subj.Name)
	}
	// action labels get no defaults, an empty label suppresses that action
	if subj.TextDomain == "" {
		subj.TextDomain = subj.Slug
	}
}
