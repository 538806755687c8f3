package storage

import "errors"

var (
	ErrKeyNotFound = errors.New("key not found")
)

// Store is a synchronous string key-value store that outlives the process.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}
