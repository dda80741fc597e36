package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/umputun/nudger/pkg/domain"
)

// nudgeResponse is the evaluation result with everything the presentation
// layer needs to render the prompt
type nudgeResponse struct {
	Slug    string    `json:"slug"`
	Show    bool      `json:"show"`
	Message string    `json:"message,omitempty"`
	Classes string    `json:"classes,omitempty"`
	Labels  *labelSet `json:"labels,omitempty"`
}

// labelSet holds the action labels, empty entries are omitted because an
// empty label suppresses that action
type labelSet struct {
	Review  string `json:"review,omitempty"`
	Later   string `json:"later,omitempty"`
	Dismiss string `json:"dismiss,omitempty"`
}

// subjectInfo is the public view of a registered subject
type subjectInfo struct {
	Slug    string   `json:"slug"`
	Name    string   `json:"name"`
	Screens []string `json:"screens,omitempty"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listHandler returns all registered subjects
func (s *Server) listHandler(w http.ResponseWriter, r *http.Request) {
	subjects := s.subjects.All()
	infos := make([]subjectInfo, len(subjects))
	for i, subj := range subjects {
		infos[i] = subjectInfo{Slug: subj.Slug, Name: subj.Name, Screens: subj.Screens}
	}
	renderJSON(w, r, http.StatusOK, infos)
}

// nudgeHandler evaluates the gate for one subject and the requesting viewer.
// The evaluation may write the initial threshold as a side effect. Storage
// failures degrade to "do not show" rather than erroring out, a broken
// nudge must never disrupt the host page.
func (s *Server) nudgeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := r.PathValue("slug")
	subj, ok := s.subjects.Get(slug)
	if !ok {
		renderError(w, r, fmt.Errorf("unknown subject %q", slug), http.StatusNotFound)
		return
	}

	viewer := s.viewers.Viewer(r)
	screen := r.URL.Query().Get("screen")

	show, err := s.gate.CanShow(ctx, subj, viewer, screen)
	if err != nil {
		log.Printf("[ERROR] evaluation failed for %q: %v", slug, err)
		show = false
	}

	resp := nudgeResponse{Slug: subj.Slug, Show: show}
	if show {
		resp.Message = s.sanitizer.Sanitize(subj.Message)
		resp.Classes = subj.Classes
		resp.Labels = &labelSet{
			Review:  subj.ReviewLabel,
			Later:   subj.LaterLabel,
			Dismiss: subj.DismissLabel,
		}
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// actionHandler applies a viewer response carried in the "do" request
// parameter. Unknown actions and unauthorized requests are silent no-ops,
// the endpoint answers ok either way.
func (s *Server) actionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := r.PathValue("slug")
	subj, ok := s.subjects.Get(slug)
	if !ok {
		renderError(w, r, fmt.Errorf("unknown subject %q", slug), http.StatusNotFound)
		return
	}

	viewer := s.viewers.Viewer(r)
	screen := r.URL.Query().Get("screen")
	action := domain.Action(r.URL.Query().Get("do"))

	if err := s.gate.Dispatch(ctx, subj, viewer, screen, action); err != nil {
		log.Printf("[ERROR] action %q failed for %q: %v", action, slug, err)
		renderError(w, r, fmt.Errorf("action failed"), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
