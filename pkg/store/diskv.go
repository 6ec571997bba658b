// Package store persists planner records as JSON documents in a diskv
// key-value database. Keys are slash-separated, e.g. "<userID>/tasks", so
// each user's collections live in their own bucket.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Persistence is the raw record store: whole JSON documents read and written
// by key. Read reports false, not an error, when the key is absent.
type Persistence interface {
	Read(key string, v interface{}) (bool, error)
	Write(key string, v interface{}) error
	Erase(key string) error
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Read(key string, v interface{}) (bool, error) {
	if !p.d.Has(key) {
		return false, nil
	}
	data, err := p.d.Read(key)
	if err != nil {
		return false, fmt.Errorf("store: read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return true, nil
}

func (p *persistence) Write(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Erase(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}

func (p *persistence) Keys(ctx context.Context) []string {
	all := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		all = append(all, key)
	}
	return all
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s/%s", strings.Join(pathKey.Path, "/"), pathKey.FileName)
}
