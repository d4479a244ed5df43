package s3blob

import (
	"context"
	"fmt"
	"sync"
)

// InMemBlob keeps stored content in memory. Used in tests and local
// development where no S3 bucket is configured.
type InMemBlob struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewInMemBlob() *InMemBlob {
	return &InMemBlob{blobs: make(map[string][]byte)}
}

// Store implements Store
func (b *InMemBlob) Store(ctx context.Context, content []byte, key string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	stored := make([]byte, len(content))
	copy(stored, content)
	b.blobs[key] = stored
	return fmt.Sprintf("mem://%s", key), nil
}

func (b *InMemBlob) Get(key string) ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	content, ok := b.blobs[key]
	return content, ok
}
