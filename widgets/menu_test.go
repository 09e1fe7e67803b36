package widgets

import (
	"strings"
	"testing"
)

func TestVerticalMenuOneRowPerOption(t *testing.T) {
	m := Menu{
		Heading:  "Menu",
		Options:  []string{"Page 1", "Page 2"},
		Icons:    []string{"*", "+"},
		Selected: 1,
		Vertical: true,
	}
	out := m.Render(40, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("want heading plus two rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Menu") {
		t.Fatalf("heading missing: %q", lines[0])
	}
	if !strings.Contains(lines[2], "> ") {
		t.Fatalf("selected row should carry the cursor marker: %q", lines[2])
	}
	if !strings.Contains(lines[1], "* Page 1") {
		t.Fatalf("icon should prefix the title: %q", lines[1])
	}
}

func TestHorizontalMenuSingleLine(t *testing.T) {
	m := Menu{
		Options:  []string{"A", "B", "C"},
		Selected: 0,
	}
	out := m.Render(60, 1)
	if strings.Contains(out, "\n") {
		t.Fatalf("horizontal menu must be one line")
	}
	for _, opt := range m.Options {
		if !strings.Contains(out, opt) {
			t.Fatalf("option %q missing from bar %q", opt, out)
		}
	}
}

func TestMenuEmptyOptionsRendersNothing(t *testing.T) {
	if out := (Menu{Heading: "Menu"}).Render(40, 5); out != "" {
		t.Fatalf("no options means no menu, got %q", out)
	}
}

func TestSidebarLayoutJoinsRegions(t *testing.T) {
	l := SidebarLayout{
		Menu:         Menu{Options: []string{"A"}, Vertical: true},
		Content:      Box{Title: "Body", Content: "hello"},
		SidebarWidth: 20,
	}
	out := l.Render(80, 10)
	if !strings.Contains(out, "A") || !strings.Contains(out, "hello") {
		t.Fatalf("both regions should render: %q", out)
	}
}

func TestBannerLayoutStacksBarAboveContent(t *testing.T) {
	l := BannerLayout{
		Menu:    Menu{Options: []string{"A", "B"}},
		Content: Box{Content: "body"},
	}
	out := l.Render(60, 10)
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		t.Fatalf("want bar plus content, got %q", out)
	}
	if !strings.Contains(lines[0], "A") {
		t.Fatalf("menu bar should be the first line: %q", lines[0])
	}
}
