package gate

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strconv"
	"time"

	"github.com/umputun/nudger/pkg/domain"
)

//go:generate moq -out mocks/shared_store.go -pkg mocks -skip-ensure -fmt goimports . SharedStore
//go:generate moq -out mocks/viewer_store.go -pkg mocks -skip-ensure -fmt goimports . ViewerStore
//go:generate moq -out mocks/authorizer.go -pkg mocks -skip-ensure -fmt goimports . Authorizer

// SharedStore is site-wide key-value storage, used for the scheduled
// threshold. Get returns an empty string for absent keys.
type SharedStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ViewerStore is per-viewer key-value storage, used for the dismissal flag.
// Get returns an empty string for absent keys.
type ViewerStore interface {
	Get(ctx context.Context, viewer, key string) (string, error)
	Set(ctx context.Context, viewer, key, value string) error
}

// Authorizer answers whether a viewer holds an authorization level
type Authorizer interface {
	HasLevel(viewer, level string) bool
}

// Evaluator composes the scope, authorization, schedule and dismissal checks
// into a single show/hide decision per (subject, viewer) pair, and exposes
// the two mutating viewer responses. The decision is derived fresh on every
// call, only the threshold and the dismissal flag are persisted.
type Evaluator struct {
	shared  SharedStore
	viewers ViewerStore
	auth    Authorizer
	now     func() time.Time
}

// NewEvaluator makes an evaluator with the given collaborators
func NewEvaluator(shared SharedStore, viewers ViewerStore, auth Authorizer) *Evaluator {
	return &Evaluator{shared: shared, viewers: viewers, auth: auth, now: time.Now}
}

// CanShow reports whether the nudge for subj should be shown to viewer on
// the given screen. Checks run in a fixed short-circuit order: scope, then
// authorization, then schedule, then dismissal. The schedule check writes
// the initial threshold on its first evaluation, so an out-of-scope or
// unauthorized viewer never starts the clock.
func (e *Evaluator) CanShow(ctx context.Context, subj *domain.Subject, viewer, screen string) (bool, error) {
	if !subj.Valid() {
		return false, nil
	}
	if !inScope(subj, screen) {
		return false, nil
	}
	if viewer == "" || !e.auth.HasLevel(viewer, subj.RequiredLevel) {
		return false, nil
	}

	due, err := e.isTime(ctx, subj)
	if err != nil {
		return false, fmt.Errorf("check schedule for %q: %w", subj.Slug, err)
	}
	if !due {
		return false, nil
	}

	dismissed, err := e.isDismissed(ctx, subj, viewer)
	if err != nil {
		return false, fmt.Errorf("check dismissal for %q: %w", subj.Slug, err)
	}
	return !dismissed, nil
}

// Dispatch applies a viewer response. Out-of-scope or unauthorized requests
// are silently ignored, as are unknown actions. Each branch is idempotent,
// redundant dispatches can't corrupt state.
func (e *Evaluator) Dispatch(ctx context.Context, subj *domain.Subject, viewer, screen string, action domain.Action) error {
	if !subj.Valid() || !inScope(subj, screen) {
		return nil
	}
	if viewer == "" || !e.auth.HasLevel(viewer, subj.RequiredLevel) {
		return nil
	}

	switch action {
	case domain.ActionLater:
		if err := e.snooze(ctx, subj); err != nil {
			return fmt.Errorf("snooze %q: %w", subj.Slug, err)
		}
	case domain.ActionDismiss:
		if err := e.dismiss(ctx, subj, viewer); err != nil {
			return fmt.Errorf("dismiss %q for viewer: %w", subj.Slug, err)
		}
	default:
		log.Printf("[DEBUG] ignored action %q for %q", action, subj.Slug)
	}
	return nil
}

// isTime checks the scheduled threshold, initializing it to now+interval on
// the first evaluation. The first evaluation always answers false, which
// guarantees a minimum grace period even with no prior state. An
// unparseable stored value is treated as absent and re-initialized.
func (e *Evaluator) isTime(ctx context.Context, subj *domain.Subject) (bool, error) {
	key := Key(subj.Prefix, fieldTime)
	raw, err := e.shared.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get threshold: %w", err)
	}

	now := e.now()
	if raw != "" {
		if ts, perr := strconv.ParseInt(raw, 10, 64); perr == nil {
			return ts <= now.Unix(), nil
		}
		log.Printf("[WARN] unparseable threshold %q for %q, resetting", raw, subj.Slug)
	}

	next := now.Add(subj.SnoozeInterval).Unix()
	if err := e.shared.Set(ctx, key, strconv.FormatInt(next, 10)); err != nil {
		return false, fmt.Errorf("init threshold: %w", err)
	}
	return false, nil
}

// snooze pushes the threshold to now+2*interval unconditionally. Repeated
// snoozes compound from each press time, not from the original schedule.
func (e *Evaluator) snooze(ctx context.Context, subj *domain.Subject) error {
	next := e.now().Add(2 * subj.SnoozeInterval).Unix()
	return e.shared.Set(ctx, Key(subj.Prefix, fieldTime), strconv.FormatInt(next, 10))
}

// isDismissed reads the per-viewer flag, absent means not dismissed
func (e *Evaluator) isDismissed(ctx context.Context, subj *domain.Subject, viewer string) (bool, error) {
	val, err := e.viewers.Get(ctx, viewer, Key(subj.Prefix, fieldDismissed))
	if err != nil {
		return false, fmt.Errorf("get dismissal flag: %w", err)
	}
	return val == "1", nil
}

// dismiss sets the per-viewer flag, there is no way to clear it back
func (e *Evaluator) dismiss(ctx context.Context, subj *domain.Subject, viewer string) error {
	return e.viewers.Set(ctx, viewer, Key(subj.Prefix, fieldDismissed), "1")
}

// inScope reports whether screen is allowed for the subject. An empty
// screens set means unrestricted, an unresolvable (empty) screen matches
// only unrestricted subjects.
func inScope(subj *domain.Subject, screen string) bool {
	if len(subj.Screens) == 0 {
		return true
	}
	return screen != "" && slices.Contains(subj.Screens, screen)
}
