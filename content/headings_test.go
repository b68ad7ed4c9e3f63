package content

import (
	"strings"
	"testing"
)

func flatten(nodes []*HeadingNode) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.Title)
		out = append(out, flatten(n.Children)...)
	}
	return out
}

func TestBuildHeadingTreeNesting(t *testing.T) {
	body := `<h1>Intro</h1><h2>Setup</h2><h3>Install</h3><h2>Usage</h2>`
	roots := BuildHeadingTree(body, 4)
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	intro := roots[0]
	if intro.Title != "Intro" || len(intro.Children) != 2 {
		t.Fatalf("root = %q with %d children, want Intro with 2", intro.Title, len(intro.Children))
	}
	setup := intro.Children[0]
	if setup.Title != "Setup" || len(setup.Children) != 1 || setup.Children[0].Title != "Install" {
		t.Errorf("Setup subtree wrong: %+v", setup)
	}
	if intro.Children[1].Title != "Usage" {
		t.Errorf("second child = %q, want Usage", intro.Children[1].Title)
	}
}

func TestBuildHeadingTreeDocumentOrder(t *testing.T) {
	body := `<h2>A</h2><h3>B</h3><h2>C</h2><h4>D</h4><h2>E</h2>`
	roots := BuildHeadingTree(body, 4)
	got := flatten(roots)
	want := []string{"A", "B", "C", "D", "E"}
	if len(got) != len(want) {
		t.Fatalf("pre-order has %d headings, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pre-order[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildHeadingTreeSkipLevelNesting(t *testing.T) {
	body := `<h2>Parent</h2><h4>Deep</h4>`
	roots := BuildHeadingTree(body, 4)
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].Title != "Deep" {
		t.Errorf("h4 should nest under the preceding h2, got %+v", roots[0])
	}
}

func TestBuildHeadingTreeMaxDepth(t *testing.T) {
	body := `<h2>Keep</h2><h5>Drop</h5><h6>Drop too</h6>`
	roots := BuildHeadingTree(body, 4)
	got := flatten(roots)
	if len(got) != 1 || got[0] != "Keep" {
		t.Errorf("headings deeper than maxDepth should be discarded, got %v", got)
	}
}

func TestBuildHeadingTreeUniqueIDsForDuplicateText(t *testing.T) {
	body := `<h2>Notes</h2><h2>Notes</h2><h2>Notes</h2>`
	roots := BuildHeadingTree(body, 4)
	seen := make(map[string]struct{})
	for _, n := range roots {
		if _, dup := seen[n.ID]; dup {
			t.Fatalf("duplicate id %q", n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	if len(seen) != 3 {
		t.Errorf("got %d distinct ids, want 3", len(seen))
	}
}

func TestBuildHeadingTreeKeepsExistingIDs(t *testing.T) {
	body := `<h2 id="custom-anchor">Custom</h2><h2>Generated</h2>`
	roots := BuildHeadingTree(body, 4)
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	if roots[0].ID != "custom-anchor" {
		t.Errorf("existing id = %q, want custom-anchor", roots[0].ID)
	}
	if roots[1].ID != "heading-1-generated" {
		t.Errorf("generated id = %q, want heading-1-generated", roots[1].ID)
	}
}

func TestBuildHeadingTreeIDNormalization(t *testing.T) {
	body := `<h2>  Hello, World! &amp; Friends  </h2>`
	roots := BuildHeadingTree(body, 4)
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if roots[0].ID != "heading-0-hello-world-friends" {
		t.Errorf("id = %q, want heading-0-hello-world-friends", roots[0].ID)
	}
	if roots[0].Title != "Hello, World! & Friends" {
		t.Errorf("title = %q, want trimmed text", roots[0].Title)
	}
}

func TestBuildHeadingTreeEmptyInput(t *testing.T) {
	for _, body := range []string{"", "   ", "<p>no headings here</p>"} {
		if got := BuildHeadingTree(body, 4); len(got) != 0 {
			t.Errorf("BuildHeadingTree(%q) = %v, want empty forest", body, got)
		}
	}
}

func TestEnsureHeadingIDsInjectsAnchors(t *testing.T) {
	body := `<h2>Setup</h2><p>text</p><h3>Install</h3>`
	got := EnsureHeadingIDs(body, 4)
	if !strings.Contains(got, `id="heading-0-setup"`) {
		t.Errorf("missing first anchor in %q", got)
	}
	if !strings.Contains(got, `id="heading-1-install"`) {
		t.Errorf("missing second anchor in %q", got)
	}
}

func TestEnsureHeadingIDsMatchesTree(t *testing.T) {
	body := `<h1>One</h1><h2>Two</h2><h2>Two</h2><h3 id="kept">Three</h3>`
	withIDs := EnsureHeadingIDs(body, 4)
	roots := BuildHeadingTree(body, 4)
	var check func(nodes []*HeadingNode)
	check = func(nodes []*HeadingNode) {
		for _, n := range nodes {
			if !strings.Contains(withIDs, `id="`+n.ID+`"`) {
				t.Errorf("tree id %q not present in EnsureHeadingIDs output", n.ID)
			}
			check(n.Children)
		}
	}
	check(roots)
}

func TestEnsureHeadingIDsIdempotent(t *testing.T) {
	body := `<h2>Alpha</h2><h2>Alpha</h2><p>body</p>`
	once := EnsureHeadingIDs(body, 4)
	twice := EnsureHeadingIDs(once, 4)
	if once != twice {
		t.Errorf("EnsureHeadingIDs not idempotent:\n once: %q\ntwice: %q", once, twice)
	}
}

func TestEnsureHeadingIDsEmptyInput(t *testing.T) {
	if got := EnsureHeadingIDs("", 4); got != "" {
		t.Errorf("EnsureHeadingIDs(\"\") = %q, want empty string", got)
	}
}
