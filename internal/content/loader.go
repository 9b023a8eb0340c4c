package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader reads every module manifest under a content directory once at
// construction time. Content never changes while the app runs.
type Loader struct {
	modules map[string]Module
	order   []string
}

// NewLoader loads all *.json manifests under dir (sorted by filename so
// module listing order is stable).
func NewLoader(dir string) (*Loader, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	l := &Loader{modules: make(map[string]Module)}
	for _, name := range names {
		mod, err := LoadModule(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if _, dup := l.modules[mod.Module]; dup {
			return nil, fmt.Errorf("load %s: duplicate module id %q", name, mod.Module)
		}
		l.modules[mod.Module] = mod
		l.order = append(l.order, mod.Module)
	}
	return l, nil
}

// LoadModule parses and validates one manifest file.
func LoadModule(path string) (Module, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Module{}, fmt.Errorf("read manifest: %w", err)
	}
	if err := validateManifest(raw); err != nil {
		return Module{}, fmt.Errorf("manifest %s: %w", filepath.Base(path), err)
	}

	var mod Module
	if err := json.Unmarshal(raw, &mod); err != nil {
		return Module{}, fmt.Errorf("parse manifest %s: %w", filepath.Base(path), err)
	}

	seen := make(map[string]bool, len(mod.Lessons))
	for _, lesson := range mod.Lessons {
		if seen[lesson.ID] {
			return Module{}, fmt.Errorf("manifest %s: duplicate lesson id %q", filepath.Base(path), lesson.ID)
		}
		seen[lesson.ID] = true
	}
	return mod, nil
}

// Modules returns all loaded modules in filename order.
func (l *Loader) Modules() []Module {
	out := make([]Module, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.modules[id])
	}
	return out
}

// Module returns a module by id.
func (l *Loader) Module(id string) (Module, bool) {
	mod, ok := l.modules[id]
	return mod, ok
}
