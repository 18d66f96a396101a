package port

import "errors"

//go:generate mockgen -source=kv.go -destination=../mock/kv.go -package=mock

// KV errors reported by bucket operations.
var (
	// ErrNotFound is returned when a key has no value in the bucket.
	ErrNotFound = errors.New("key not found")
	// ErrClosed is returned when the store or bucket has been closed.
	ErrClosed = errors.New("kv store closed")
)

// KVStore is a port for namespaced durable key/value storage.
// Implementations must survive power loss without corrupting committed data.
type KVStore interface {
	// Open returns a bucket scoped to the given namespace, creating it on
	// first use. Buckets must be closed after use.
	Open(namespace string) (KVBucket, error)

	// Close releases the store. Open buckets become unusable.
	Close() error
}

// KVBucket is a namespaced view of the store. Writes are buffered until
// Commit; Close without Commit discards pending writes.
type KVBucket interface {
	// GetU32 reads an unsigned 32-bit value
	GetU32(key string) (uint32, error)

	// SetU32 writes an unsigned 32-bit value
	SetU32(key string, value uint32) error

	// GetBlob reads a raw byte value
	GetBlob(key string) ([]byte, error)

	// SetBlob writes a raw byte value
	SetBlob(key string, value []byte) error

	// EraseAll removes every key in the namespace
	EraseAll() error

	// Commit makes all pending writes durable
	Commit() error

	// Close releases the bucket, discarding uncommitted writes
	Close() error
}
