package datasources

import "context"

// KeyValueStore is a client-side storage tier holding string values by key.
type KeyValueStore interface {
	KeyValueGetter
	KeyValueSetter
	KeyValueDeleter
}

// KeyValueGetter reads a value. The bool is false when the key is absent.
type KeyValueGetter interface {
	GetValue(ctx context.Context, key string) (string, bool, error)
}

type KeyValueSetter interface {
	SetValue(ctx context.Context, key, value string) error
}

// KeyValueDeleter removes a key. Deleting an absent key is not an error.
type KeyValueDeleter interface {
	DeleteValue(ctx context.Context, key string) error
}

type KeyLister interface {
	ListKeys(ctx context.Context) ([]string, error)
}
