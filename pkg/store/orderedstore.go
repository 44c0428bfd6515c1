// Package store implements a simple insertion-ordered key-value store.
package store

import (
	"errors"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	ErrKeyDoesntExist = errors.New("store: key does not exist")
)

// Ordered remembers the order in which keys were first set and marshals to a
// JSON object in that order. It is not safe for concurrent use.
type Ordered[V any] struct {
	store *orderedmap.OrderedMap[string, V]
}

func NewOrdered[V any]() *Ordered[V] {
	return &Ordered[V]{
		store: orderedmap.New[string, V](),
	}
}

// Set is used to set a value to a key. Setting an existing key replaces the
// value and keeps the key's original position.
func (o *Ordered[V]) Set(key string, value V) {
	o.store.Set(key, value)
}

// Get is used to get a value from a key.
func (o *Ordered[V]) Get(key string) (V, error) {
	v, ok := o.store.Get(key)
	if !ok {
		return v, ErrKeyDoesntExist
	}
	return v, nil
}

// Delete removes the specified key and value.
func (o *Ordered[V]) Delete(key string) error {
	if _, ok := o.store.Delete(key); !ok {
		return ErrKeyDoesntExist
	}
	return nil
}

// Keys returns the keys in insertion order.
func (o *Ordered[V]) Keys() []string {
	keys := make([]string, 0, o.store.Len())
	for pair := o.store.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (o *Ordered[V]) Len() int {
	return o.store.Len()
}

// Each calls fn for every entry in insertion order and stops at the first
// error.
func (o *Ordered[V]) Each(fn func(key string, value V) error) error {
	for pair := o.store.Oldest(); pair != nil; pair = pair.Next() {
		if err := fn(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

func (o *Ordered[V]) MarshalJSON() ([]byte, error) {
	return o.store.MarshalJSON()
}
