// Package store reads and writes tracked documents: markdown files with a
// YAML frontmatter header, kept in a vault directory.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"gopkg.in/yaml.v3"

	"tableflip.dev/focuslog/pkg/item"
)

// ErrNotFound is returned when no document exists at a path.
var ErrNotFound = errors.New("store: document not found")

// Persistence is the document store the focus grid reads and writes.
type Persistence interface {
	// ReadDocument returns the raw document text.
	ReadDocument(path string) ([]byte, error)
	// ReadHeader returns the header fields. On a parse failure it returns an
	// empty map together with the error.
	ReadHeader(path string) (map[string]any, error)
	// ReadHeaderNode returns the header as an order preserving mapping node.
	ReadHeaderNode(path string) (*yaml.Node, error)
	// WriteField replaces one header field atomically.
	WriteField(path, field string, value any) error
	// ListCandidates enumerates every tracked document.
	ListCandidates(ctx context.Context) []item.Item
	// Watch streams change events until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Config locates the vault.
type Config interface {
	BasePath() string
}

const (
	documentExt = ".md"
	tempDir     = ".focus-tmp"
)

// Load creates a Persistence backed by diskv rooted at the vault directory.
func Load(cfg Config, logger *slog.Logger) (Persistence, error) {
	if cfg == nil {
		return nil, errors.New("store: no config")
	}
	if logger == nil {
		logger = slog.Default()
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: vault path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure vault: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tempDir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// Documents are edited by other programs; a cache would serve stale
		// headers.
		CacheSizeMax: 0,
	}), basePath: basePath, log: logger}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *slog.Logger
}

func (p *persistence) ReadDocument(docPath string) ([]byte, error) {
	key, err := cleanKey(docPath)
	if err != nil {
		return nil, err
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *persistence) ReadHeader(docPath string) (map[string]any, error) {
	content, err := p.ReadDocument(docPath)
	if err != nil {
		return map[string]any{}, err
	}
	return parseHeader(content)
}

func (p *persistence) ReadHeaderNode(docPath string) (*yaml.Node, error) {
	content, err := p.ReadDocument(docPath)
	if err != nil {
		return nil, err
	}
	root, _, err := parseHeaderNode(content)
	return root, err
}

func (p *persistence) WriteField(docPath, field string, value any) error {
	if strings.TrimSpace(field) == "" {
		return errors.New("store: field name required")
	}
	key, err := cleanKey(docPath)
	if err != nil {
		return err
	}
	content, err := p.ReadDocument(key)
	if err != nil {
		return err
	}
	updated, err := setField(content, field, value)
	if err != nil {
		return fmt.Errorf("store: update %s: %w", key, err)
	}
	if err := p.d.Write(key, updated); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) ListCandidates(ctx context.Context) []item.Item {
	all := make([]item.Item, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if !isDocumentKey(key) {
			continue
		}
		content, err := p.d.Read(key)
		if err != nil {
			p.log.Warn("store: read candidate", "path", key, "err", err)
			continue
		}
		header, err := parseHeader(content)
		if err != nil {
			p.log.Warn("store: candidate header", "path", key, "err", err)
		}
		all = append(all, item.New(key, documentTags(header, content), header))
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Path < all[j].Path
	})
	return all
}

// isDocumentKey skips non-markdown files and anything under a dot
// directory (the diskv temp dir, editor metadata).
func isDocumentKey(key string) bool {
	if path.Ext(key) != documentExt {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if strings.HasPrefix(part, ".") {
			return false
		}
	}
	return true
}

// cleanKey turns a user supplied path into a vault key: slash separated,
// relative and without "..".
func cleanKey(docPath string) (string, error) {
	p := strings.TrimSpace(filepath.ToSlash(docPath))
	if p == "" {
		return "", errors.New("store: path required")
	}
	p = path.Clean("/" + p)[1:]
	if p == "" || p == "." {
		return "", fmt.Errorf("store: invalid path %q", docPath)
	}
	return p, nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return path.Join(append(append([]string{}, pathKey.Path...), pathKey.FileName)...)
}
