package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// File is the on-disk rule set format. Heuristic rules serialize only their
// registry ref, never executable code.
type File struct {
	Version    int             `yaml:"version"`
	Rules      []DetectionRule `yaml:"rules"`
	Categories []RuleCategory  `yaml:"categories,omitempty"`
}

// LoadFile reads and validates a YAML rule file. Every rule must pass
// Validate; invalid regex patterns are rejected here, at authoring/load
// time, so scans never see them.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse rule file %s: %w", path, err)
	}

	seen := make(map[string]bool, len(f.Rules))
	for i := range f.Rules {
		r := &f.Rules[i]
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rule file %s: %w", path, err)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("rule file %s: duplicate rule id %s", path, r.ID)
		}
		seen[r.ID] = true
	}
	for _, c := range f.Categories {
		for _, id := range c.RuleIDs {
			if !seen[id] {
				return nil, fmt.Errorf("rule file %s: category %s references unknown rule %s", path, c.ID, id)
			}
		}
	}
	return &f, nil
}

// SaveFile writes a rule set to disk in the serializable schema.
func SaveFile(path string, f *File) error {
	if f.Version == 0 {
		f.Version = 1
	}
	for i := range f.Rules {
		if err := f.Rules[i].Validate(); err != nil {
			return err
		}
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal rule file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write rule file: %w", err)
	}
	return nil
}

// Watch reloads the rule file whenever it changes on disk and hands the new
// set to callback. Load errors keep the previous set in effect. The returned
// stop function ends the watch.
func Watch(path string, logger *zap.Logger, callback func(*File)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create rule watcher: %w", err)
	}
	// Watch the directory: editors replace files rather than writing in place.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch rule directory: %w", err)
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				f, err := LoadFile(path)
				if err != nil {
					logger.Warn("Rule file reload failed, keeping previous set",
						zap.String("path", path),
						zap.Error(err))
					continue
				}
				logger.Info("Rule file reloaded",
					zap.String("path", path),
					zap.Int("rules", len(f.Rules)))
				callback(f)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Rule watcher error", zap.Error(err))
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
