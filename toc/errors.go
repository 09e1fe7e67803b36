package toc

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrPageNotFound reports a title lookup that matched no visible
	// page. This legitimately happens when the title came from a stale
	// render, for example after the viewer identity changed and hid a
	// previously selected page.
	ErrPageNotFound = errors.New("page not found")

	// ErrDuplicatePage reports a page list that repeats a UID, or a
	// title within the visible set.
	ErrDuplicatePage = errors.New("duplicate page")
)

// NotFoundError carries the title that failed to resolve and, when a
// visible title is close enough, a suggestion for the error message.
type NotFoundError struct {
	Title      string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("no visible page titled %q (closest match: %q)", e.Title, e.Suggestion)
	}
	return fmt.Sprintf("no visible page titled %q", e.Title)
}

func (e *NotFoundError) Unwrap() error { return ErrPageNotFound }

const maxSuggestDistance = 3

// suggestTitle returns the visible title nearest to want, or "" when
// nothing is within maxSuggestDistance edits.
func suggestTitle(want string, titles []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, t := range titles {
		if d := levenshtein.ComputeDistance(want, t); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}
