package topics

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/plugreg/pkg/errors"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"registration.md": {Data: []byte("# Registration\n\nHow plug-ins register.")},
		"families.txt":    {Data: []byte("Families are interface types.")},
		"notes.json":      {Data: []byte(`{"ignored": true}`)},
	}
}

func TestNew(t *testing.T) {
	m, err := New(testFS(), Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	names := m.Names()
	want := []string{"families", "registration"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestNewCustomExtensions(t *testing.T) {
	m, err := New(testFS(), Options{Extensions: []string{".md"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if names := m.Names(); len(names) != 1 || names[0] != "registration" {
		t.Errorf("Names() = %v, want [registration]", names)
	}
}

func TestRender(t *testing.T) {
	m, err := New(testFS(), Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("plain renderer returns content unchanged", func(t *testing.T) {
		content, err := m.Render("families")
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if content != "Families are interface types." {
			t.Errorf("Render() = %q", content)
		}
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, err := m.Render("missing")
		if !errors.IsErrorCode(err, errors.ErrTopicNotFound) {
			t.Errorf("Render(missing) error = %v, want ErrTopicNotFound", err)
		}
	})
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer("auto", 0)

	if got := r.Render("plain text", ".txt"); got != "plain text" {
		t.Errorf("Render(.txt) = %q, want passthrough", got)
	}
}

func TestGlamourRendererWrapsToWidth(t *testing.T) {
	r := NewGlamourRenderer("notty", 12)

	prose := strings.Repeat("word ", 40)
	out := r.Render(prose, ".md")

	for _, line := range strings.Split(out, "\n") {
		if len(line) > 24 {
			t.Errorf("line %q exceeds the configured wrap width", line)
		}
	}
}
