// Package topics provides a topic-based help system for the CLI: help
// files bundled into the binary, listed and rendered on demand. It
// extends command help with longer-form documentation without shipping
// files next to the executable.
package topics

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/plugreg/pkg/errors"
)

// Topic represents a single help topic
type Topic struct {
	Name    string
	Format  string // file extension, e.g. ".md"
	Content string
}

// Manager holds the loaded topics for an application
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Options configures the Manager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"] if not specified.
	Extensions []string

	// Renderer for formatting topic content (optional).
	// Defaults to PlainRenderer if not specified.
	Renderer Renderer
}

// New scans fsys for topic files and returns a Manager over them
func New(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:   make(map[string]*Topic),
		renderer: opts.Renderer,
	}
	if m.renderer == nil {
		m.renderer = PlainRenderer{}
	}

	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = []string{".txt", ".md"}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		supported := false
		for _, validExt := range extensions {
			if ext == validExt {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Format:  ext,
			Content: string(content),
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "could not scan help topics")
	}

	return m, nil
}

// Names returns all topic names in sorted order
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns a topic's content formatted for terminal display
func (m *Manager) Render(name string) (string, error) {
	topic, ok := m.topics[name]
	if !ok {
		return "", errors.Newf(errors.ErrTopicNotFound, "no help topic named %q", name)
	}
	return m.renderer.Render(topic.Content, topic.Format), nil
}
