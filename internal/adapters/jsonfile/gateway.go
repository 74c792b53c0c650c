// Package jsonfile contains the JSON file backing store for the record set.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/example/timeclock/internal/clockerr"
	"github.com/example/timeclock/internal/ports/secondary"
)

// Gateway implements secondary.SnapshotGateway over a single JSON file.
// Every Save rewrites the whole file.
type Gateway struct {
	path string
	mu   sync.Mutex // Protects concurrent writes to the filesystem
}

// NewGateway creates a gateway for the file at path.
func NewGateway(path string) *Gateway {
	return &Gateway{path: path}
}

// Path returns the backing file path.
func (g *Gateway) Path() string {
	return g.path
}

// Load reads the backing file. An absent or empty file is seeded first.
func (g *Gateway) Load(ctx context.Context) (*secondary.Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	content, err := os.ReadFile(g.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: failed to read %s: %v", clockerr.ErrCorruptStore, g.path, err)
	}

	if len(bytes.TrimSpace(content)) == 0 {
		seed := SeedSnapshot()
		if err := g.write(seed); err != nil {
			return nil, fmt.Errorf("failed to write seed data: %w", err)
		}
		return seed, nil
	}

	var doc document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", clockerr.ErrCorruptStore, g.path, err)
	}

	snap, err := doc.toSnapshot()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", clockerr.ErrCorruptStore, g.path, err)
	}
	return snap, nil
}

// Save writes the snapshot to a temporary file and renames it over the
// backing file, so readers see either the old or the new content.
func (g *Gateway) Save(ctx context.Context, snap *secondary.Snapshot) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.write(snap)
}

func (g *Gateway) write(snap *secondary.Snapshot) error {
	doc, err := fromSnapshot(snap)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if dir := filepath.Dir(g.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data dir: %w", err)
		}
	}

	tempPath := g.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tempPath, err)
	}
	if err := os.Rename(tempPath, g.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", g.path, err)
	}
	return nil
}

// Ensure Gateway implements the interface.
var _ secondary.SnapshotGateway = (*Gateway)(nil)
