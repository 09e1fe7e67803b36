package demo

import (
	"strings"
	"testing"

	"tocboard/app"
	"tocboard/toc"
)

func TestDemoPagesFilterAndOrder(t *testing.T) {
	c := &app.Canvas{}

	user, err := toc.NewRegistry("user", Pages(c))
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	got := user.Titles()
	if len(got) != 2 || got[0] != "Page 1" || got[1] != "Page 2" {
		t.Fatalf("user should see [Page 1, Page 2], got %v", got)
	}

	admin, err := toc.NewRegistry("admin", Pages(c))
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if admin.Len() != 3 {
		t.Fatalf("admin should see all pages, got %v", admin.Titles())
	}
}

func TestSecretPageIsModuleDispatched(t *testing.T) {
	c := &app.Canvas{}
	reg, err := toc.NewRegistry("admin", Pages(c))
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if err := reg.LoadPage("Secret page", false); err != nil {
		t.Fatalf("LoadPage: %v", err)
	}
	if !strings.Contains(c.String(), "secret page") {
		t.Fatalf("module Load should write into the canvas, got %q", c.String())
	}
}
