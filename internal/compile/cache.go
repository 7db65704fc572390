package compile

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"prism/internal/diag"
)

// Increment when the CachePayload format changes.
const cacheSchemaVersion uint16 = 1

// Digest identifies a cached program by the hash of its recipe inputs.
type Digest [sha256.Size]byte

// HashKey derives a cache key from an ordered list of input strings
// (program name, settings fingerprint, recipe revision and the like).
func HashKey(parts ...string) Digest {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// IsZero reports whether the digest was never set.
func (d Digest) IsZero() bool {
	var z Digest
	return d == z
}

// Cache stores sealed program renderings on disk, keyed by Digest.
// Thread-safe for concurrent access. A nil *Cache is a no-op cache.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is the serialized form of a sealed program. IR trees hold
// interface payloads, so the cache stores the rendered dump instead and
// the caller re-runs the recipe when it needs live IR.
type CachePayload struct {
	Schema uint16

	Name string
	Dump string

	Diagnostics []diag.Diagnostic
}

// OpenCache initializes a disk cache. An empty dir selects the standard
// per-user cache location.
func OpenCache(dir string) (*Cache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "prism")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "programs", hex.EncodeToString(key[:])+".mp")
}

// Put serializes a sealed program under the given key; dump may be
// empty. The write is a temp-file-plus-rename so readers never observe a
// partial entry.
func (c *Cache) Put(key Digest, p *Program, dump string) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := &CachePayload{
		Schema:      cacheSchemaVersion,
		Name:        p.Name,
		Dump:        dump,
		Diagnostics: p.Diagnostics,
	}

	path := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// Get reads the payload stored under key. Returns (false, nil) on a miss
// or when the entry was written by a different schema version.
func (c *Cache) Get(key Digest, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates every cached entry, useful after format changes.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "programs"))
}
