// Package store provides the key-value persistence port notes are saved
// through, backed by diskv on disk with an in-memory stand-in for tests.
package store

import (
	"github.com/peterbourgon/diskv/v3"
)

// Well-known keys. NotesKey holds the serialized note sequence, ThemeKey a
// serialized boolean for the dark-theme preference.
const (
	NotesKey = "notes"
	ThemeKey = "theme"
)

// KV is the persistence port. Load reports false when the key has never
// been written; Save overwrites whatever is there.
type KV interface {
	Load(key string) (string, bool)
	Save(key, value string) error
}

// Open returns a KV rooted at the configured base path.
func Open(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &diskvKV{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil }, // flat keyspace
		CacheSizeMax: 1024 * 1024,                          // 1MB
	}), basePath: basePath}, nil
}

type diskvKV struct {
	d        *diskv.Diskv
	basePath string
}

func (p *diskvKV) Load(key string) (string, bool) {
	val, err := p.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (p *diskvKV) Save(key, value string) error {
	return p.d.Write(key, []byte(value))
}
