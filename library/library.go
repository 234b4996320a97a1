package library

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/promptkit/template"
)

// ErrNotFound is returned when the library has no template by the
// requested name.
var ErrNotFound = errors.New("template not found in library")

// Library is a named collection of templates loaded from a directory
// of .yaml, .yml, and .toml definition files. It is safe for
// concurrent use; Watch keeps it in sync with the directory.
type Library struct {
	dir string

	mu        sync.RWMutex
	templates map[string]template.Template
}

// Load reads every template definition in dir (non-recursive) and
// returns the resulting Library. Files with other extensions are
// ignored; a file that fails to parse or validate fails the whole
// load, so a library that exists contains only valid templates.
func Load(dir string) (*Library, error) {
	lib := &Library{dir: dir}
	if err := lib.Reload(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Reload re-reads the directory, atomically replacing the template set.
func (l *Library) Reload() error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("library: read dir: %w", err)
	}

	templates := make(map[string]template.Template)
	for _, entry := range entries {
		if entry.IsDir() || !isTemplateFile(entry.Name()) {
			continue
		}
		path := filepath.Join(l.dir, entry.Name())
		name, tmpl, err := loadFile(path)
		if err != nil {
			return err
		}
		if _, exists := templates[name]; exists {
			return fmt.Errorf("library: duplicate template name %q", name)
		}
		templates[name] = tmpl
	}

	l.mu.Lock()
	l.templates = templates
	l.mu.Unlock()
	return nil
}

// Get returns the named template.
func (l *Library) Get(name string) (template.Template, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tmpl, ok := l.templates[name]
	if !ok {
		return template.Template{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return tmpl, nil
}

// Names returns the sorted names of all loaded templates.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.templates))
	for name := range l.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of loaded templates.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.templates)
}

// Watch reloads the library whenever template files in its directory
// change, until ctx is cancelled. A reload that fails (e.g. a half-
// written file) keeps the previous template set; the next event
// retries.
func (l *Library) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("library: create watcher: %w", err)
	}
	if err := watcher.Add(l.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("library: watch %s: %w", l.dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !isTemplateFile(filepath.Base(event.Name)) {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					_ = l.Reload()
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Watcher errors are usually recoverable; keep serving
				// the last good template set.
			}
		}
	}()

	return nil
}

func isTemplateFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".toml":
		return true
	}
	return false
}
