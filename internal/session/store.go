// Package session is the host-owned ambient state: a key-value map that
// survives across render passes within one program run. Nothing here
// persists across restarts. The toc core never touches the store; the
// shell reads the viewer out of it and passes it down explicitly.
package session

// Well-known keys. Callers may store additional ad-hoc keys.
const (
	keyViewer        = "viewer"
	keyLastSelection = "last_selection"
)

// ViewerSource exposes just the current viewer identity. Components
// that only need to know who is looking should accept this, not the
// whole store.
type ViewerSource interface {
	CurrentViewer() string
}

// Store is an in-memory session state bag. Render passes are
// single-threaded, so no locking.
type Store struct {
	values map[string]string
}

func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Get(key string) string {
	return s.values[key]
}

func (s *Store) Set(key, value string) {
	s.values[key] = value
}

// Viewer returns the current viewer identity, "" when unset.
func (s *Store) Viewer() string { return s.Get(keyViewer) }

func (s *Store) SetViewer(v string) { s.Set(keyViewer, v) }

// CurrentViewer implements ViewerSource.
func (s *Store) CurrentViewer() string { return s.Viewer() }

// LastSelection returns the menu title selected on the previous render
// pass, "" when none.
func (s *Store) LastSelection() string { return s.Get(keyLastSelection) }

func (s *Store) SetLastSelection(title string) { s.Set(keyLastSelection, title) }
