package toc

import (
	"errors"
	"testing"
)

func pageList() []Page {
	return []Page{
		{UID: "p2", Title: "Page 2", Icon: "hand", Index: 1},
		{UID: "p3", Title: "Secret page", Icon: "arrow", Index: 2, ShowTo: []string{"admin"}},
		{UID: "p1", Title: "Page 1", Icon: "person", Index: 0},
	}
}

func TestOrderByIndexAscending(t *testing.T) {
	r, err := NewRegistry("admin", pageList())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	got := r.UIDs()
	want := []string{"p1", "p2", "p3"}
	if len(got) != len(want) {
		t.Fatalf("got %d pages, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSortIsStableOnEqualIndex(t *testing.T) {
	pages := []Page{
		{UID: "a", Title: "A", Index: 1},
		{UID: "b", Title: "B", Index: 0},
		{UID: "c", Title: "C", Index: 1},
		{UID: "d", Title: "D", Index: 1},
	}
	r, err := NewRegistry("anyone", pages)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	got := r.UIDs()
	want := []string{"b", "a", "c", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q, want %q (stability broken)", i, got[i], want[i])
		}
	}
}

func TestFilterByViewer(t *testing.T) {
	cases := []struct {
		viewer string
		want   []string
	}{
		{"user", []string{"Page 1", "Page 2"}},
		{"admin", []string{"Page 1", "Page 2", "Secret page"}},
		{"", []string{"Page 1", "Page 2"}},
	}
	for _, tc := range cases {
		r, err := NewRegistry(tc.viewer, pageList())
		if err != nil {
			t.Fatalf("viewer %q: %v", tc.viewer, err)
		}
		got := r.Titles()
		if len(got) != len(tc.want) {
			t.Fatalf("viewer %q: got %v, want %v", tc.viewer, got, tc.want)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("viewer %q position %d: got %q, want %q", tc.viewer, i, got[i], tc.want[i])
			}
		}
	}
}

func TestProjectionsStayAligned(t *testing.T) {
	r, err := NewRegistry("admin", pageList())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	titles := r.Titles()
	icons := r.Icons()
	if len(titles) != len(icons) {
		t.Fatalf("titles/icons length mismatch: %d vs %d", len(titles), len(icons))
	}
	pages := r.Pages()
	for i := range pages {
		if titles[i] != pages[i].Title || icons[i] != pages[i].Icon {
			t.Fatalf("position %d: projections out of step with pages", i)
		}
	}
	if r.Project(Attr("bogus")) != nil {
		t.Fatalf("unknown attribute should project to nil")
	}
}

func TestPageByTitle(t *testing.T) {
	r, err := NewRegistry("user", pageList())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	p, err := r.PageByTitle("Page 2")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if p.UID != "p2" {
		t.Fatalf("got page %q, want p2", p.UID)
	}

	_, err = r.PageByTitle("Secret page")
	if !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("hidden page should be not-found, got %v", err)
	}
}

func TestNotFoundCarriesSuggestion(t *testing.T) {
	r, err := NewRegistry("user", pageList())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	_, err = r.PageByTitle("Page 12")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want *NotFoundError, got %v", err)
	}
	if nf.Suggestion != "Page 1" && nf.Suggestion != "Page 2" {
		t.Fatalf("suggestion %q should be a near title", nf.Suggestion)
	}
	_, err = r.PageByTitle("completely unrelated")
	if !errors.As(err, &nf) {
		t.Fatalf("want *NotFoundError, got %v", err)
	}
	if nf.Suggestion != "" {
		t.Fatalf("distant title should get no suggestion, got %q", nf.Suggestion)
	}
}

func TestDuplicateTitleHiddenFromViewerIsFine(t *testing.T) {
	pages := []Page{
		{UID: "visible", Title: "X", Index: 0},
		{UID: "hidden", Title: "X", Index: 1, ShowTo: []string{"admin"}},
	}
	r, err := NewRegistry("user", pages)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	p, err := r.PageByTitle("X")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if p.UID != "visible" {
		t.Fatalf("lookup must resolve the visible page, got %q", p.UID)
	}
}

func TestDuplicateTitleVisibleIsRejected(t *testing.T) {
	pages := []Page{
		{UID: "a", Title: "X", Index: 0},
		{UID: "b", Title: "X", Index: 1},
	}
	_, err := NewRegistry("user", pages)
	if !errors.Is(err, ErrDuplicatePage) {
		t.Fatalf("want ErrDuplicatePage, got %v", err)
	}
}

func TestDuplicateUIDIsRejected(t *testing.T) {
	pages := []Page{
		{UID: "same", Title: "A", Index: 0},
		{UID: "same", Title: "B", Index: 1, ShowTo: []string{"nobody"}},
	}
	_, err := NewRegistry("user", pages)
	if !errors.Is(err, ErrDuplicatePage) {
		t.Fatalf("uid check must cover hidden pages too, got %v", err)
	}
}

func TestEmptyRegistryIsNotAnError(t *testing.T) {
	pages := []Page{
		{UID: "a", Title: "A", Index: 0, ShowTo: []string{"admin"}},
	}
	r, err := NewRegistry("user", pages)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if r.Len() != 0 {
		t.Fatalf("want empty registry, got %d pages", r.Len())
	}
	if len(r.Titles()) != 0 {
		t.Fatalf("projections of an empty registry must be empty")
	}
}

func TestLoadPageDispatchesCallback(t *testing.T) {
	hits := 0
	pages := []Page{
		{UID: "a", Title: "A", Index: 0, Contents: Callback(func() error { hits++; return nil })},
	}
	r, err := NewRegistry("user", pages)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if err := r.LoadPage("A", false); err != nil {
		t.Fatalf("LoadPage: %v", err)
	}
	if hits != 1 {
		t.Fatalf("callback should run exactly once, ran %d times", hits)
	}
}

type fakeModule struct {
	hits int
	err  error
}

func (m *fakeModule) Load() error {
	m.hits++
	return m.err
}

func TestLoadPageDispatchesModule(t *testing.T) {
	mod := &fakeModule{}
	pages := []Page{
		{UID: "a", Title: "A", Index: 0, Contents: ModuleHandle(mod)},
	}
	r, err := NewRegistry("user", pages)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if err := r.LoadPage("A", false); err != nil {
		t.Fatalf("LoadPage: %v", err)
	}
	if mod.hits != 1 {
		t.Fatalf("module Load should run exactly once, ran %d times", mod.hits)
	}
}

func TestLoadPageEmitsHeading(t *testing.T) {
	var headings []string
	pages := []Page{
		{UID: "a", Title: "A", Index: 0, Contents: Callback(func() error { return nil })},
	}
	r, err := NewRegistry("user", pages, WithHeading(func(title string) {
		headings = append(headings, title)
	}))
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if err := r.LoadPage("A", false); err != nil {
		t.Fatalf("LoadPage: %v", err)
	}
	if len(headings) != 0 {
		t.Fatalf("heading must be skipped when showTitle is false")
	}
	if err := r.LoadPage("A", true); err != nil {
		t.Fatalf("LoadPage: %v", err)
	}
	if len(headings) != 1 || headings[0] != "A" {
		t.Fatalf("want heading [A], got %v", headings)
	}
}

func TestContentErrorPropagatesUnchanged(t *testing.T) {
	boom := errors.New("content exploded")
	pages := []Page{
		{UID: "a", Title: "A", Index: 0, Contents: Callback(func() error { return boom })},
		{UID: "b", Title: "B", Index: 1, Contents: ModuleHandle(&fakeModule{err: boom})},
	}
	r, err := NewRegistry("user", pages)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if err := r.LoadPage("A", false); !errors.Is(err, boom) {
		t.Fatalf("callback error must propagate unchanged, got %v", err)
	}
	if err := r.LoadPage("B", false); !errors.Is(err, boom) {
		t.Fatalf("module error must propagate unchanged, got %v", err)
	}
}

func TestLoadPageNotFoundSkipsHeading(t *testing.T) {
	headings := 0
	r, err := NewRegistry("user", pageList(), WithHeading(func(string) { headings++ }))
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if err := r.LoadPage("Secret page", true); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("want not-found, got %v", err)
	}
	if headings != 0 {
		t.Fatalf("heading must not be emitted for a failed lookup")
	}
}
