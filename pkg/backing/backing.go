// Package backing provides the durable key-value medium every collection
// and the settings cell write through.
package backing

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/peterbourgon/diskv/v3"
)

var (
	// ErrUnavailable indicates the backing medium could not be reached at
	// all. Callers fall back to in-memory operation.
	ErrUnavailable = errors.New("backing: storage unavailable")

	// ErrStorageFull indicates a write was rejected for lack of space.
	ErrStorageFull = errors.New("backing: storage full")
)

// Backing is a synchronous byte store keyed by string. Get reports absence
// separately from failure so callers can tell "never written" apart from
// "could not read".
type Backing interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Keys() []string
}

// Open creates a disk-backed Backing rooted at the config base path.
func Open(cfg Config) (Backing, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &disk{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type disk struct {
	d *diskv.Diskv
}

func (b *disk) Get(key string) ([]byte, bool, error) {
	if !b.d.Has(key) {
		return nil, false, nil
	}
	val, err := b.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: read %s: %v", ErrUnavailable, key, err)
	}
	return val, true, nil
}

func (b *disk) Set(key string, value []byte) error {
	if err := b.d.Write(key, value); err != nil {
		if isNoSpace(err) {
			return fmt.Errorf("%w: write %s: %v", ErrStorageFull, key, err)
		}
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

func (b *disk) Keys() []string {
	keys := make([]string, 0)
	for key := range b.d.Keys(nil) {
		keys = append(keys, key)
	}
	return keys
}

func isNoSpace(err error) bool {
	if errors.Is(err, syscall.ENOSPC) || errors.Is(err, syscall.EDQUOT) {
		return true
	}
	return strings.Contains(err.Error(), "no space left")
}
