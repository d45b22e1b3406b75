package repository

// KVStore defines key-value byte storage operations.
// Get returns nil data and a nil error when the key is absent.
type KVStore interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}
