package value

import (
	"bytes"
	"strings"
	"sync"

	"github.com/Konsultn-Engineering/sqlbind/utils"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oklog/ulid/v2"
)

// BlobPrefix starts every blob handle.
const BlobPrefix = "blob:"

// DefaultBlobStoreSize bounds how many binary values a store keeps.
const DefaultBlobStoreSize = 256

// BlobStore hands out displayable handles for binary cell values so a
// results surface can fetch the bytes on demand. Old blobs are evicted.
// Registering the same bytes again returns the same handle while they are
// still stored.
type BlobStore struct {
	mu      sync.Mutex
	blobs   *lru.Cache[string, []byte]
	handles *lru.Cache[uint64, string]
}

// NewBlobStore creates a store holding at most size blobs.
func NewBlobStore(size int) *BlobStore {
	if size <= 0 {
		size = DefaultBlobStoreSize
	}
	blobs, _ := lru.New[string, []byte](size)
	handles, _ := lru.New[uint64, string](size)
	return &BlobStore{blobs: blobs, handles: handles}
}

// Register stores b and returns its handle, "blob:<ULID>".
func (s *BlobStore) Register(b []byte) string {
	digest := utils.ContentHash(b)

	s.mu.Lock()
	defer s.mu.Unlock()

	if handle, ok := s.handles.Get(digest); ok {
		if stored, ok := s.blobs.Get(handle); ok && bytes.Equal(stored, b) {
			return handle
		}
	}

	handle := BlobPrefix + ulid.Make().String()
	s.blobs.Add(handle, bytes.Clone(b))
	s.handles.Add(digest, handle)
	return handle
}

// Lookup returns the bytes behind handle.
func (s *BlobStore) Lookup(handle string) ([]byte, bool) {
	if !strings.HasPrefix(handle, BlobPrefix) {
		return nil, false
	}
	return s.blobs.Get(handle)
}

func (s *BlobStore) Len() int {
	return s.blobs.Len()
}
