package hashtable

import (
	"fmt"

	"github.com/tuannh982/strhash/hashtable/internal"
	"github.com/tuannh982/strhash/utils/collections"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultCapacity = 64
	MaxCapacity     = 1<<31 - 1
)

var _ collections.Map[string, struct{}] = (*Table[struct{}])(nil)

// Table is a fixed-capacity hash table from string keys to values of type V.
// Collisions are resolved by singly-linked chains, new entries going to the
// tail of their bucket's chain. The bucket count never changes, so chains grow
// linearly once the entry count passes the capacity.
//
// A Table is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every call with a single lock.
type Table[V any] struct {
	buckets  []*internal.Node[V]
	capacity int
	size     int
	hashFunc HashFunc
	alloc    Allocator
	log      *log.Entry
}

// New creates a table with capacity buckets.
func New[V any](capacity int, opts ...Option) (*Table[V], error) {
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: capacity %d not in [1, %d]", ErrInvalidArgument, capacity, MaxCapacity)
	}
	cfg := newConfig(opts)
	logger := cfg.logger.WithField("capacity", capacity)
	if err := cfg.allocator.Alloc(KindBuckets, capacity); err != nil {
		logger.WithError(err).Warn("bucket allocation refused")
		return nil, fmt.Errorf("%w: %d buckets: %v", ErrAllocationFailure, capacity, err)
	}
	t := &Table[V]{
		buckets:  make([]*internal.Node[V], capacity),
		capacity: capacity,
		size:     0,
		hashFunc: cfg.hashFunc,
		alloc:    cfg.allocator,
		log:      logger,
	}
	t.log.Debug("table created")
	return t, nil
}

// NewDefault creates a table with DefaultCapacity buckets.
func NewDefault[V any](opts ...Option) (*Table[V], error) {
	return New[V](DefaultCapacity, opts...)
}

func (t *Table[V]) check() error {
	if t == nil {
		return fmt.Errorf("%w: nil table", ErrInvalidArgument)
	}
	if t.buckets == nil {
		return ErrDestroyed
	}
	return nil
}

func (t *Table[V]) bucketIndex(key string) int {
	return int(t.hashFunc(key) % uint32(len(t.buckets)))
}

// BucketIndex reports the bucket key maps to.
func (t *Table[V]) BucketIndex(key string) (int, error) {
	if err := t.check(); err != nil {
		return 0, err
	}
	return t.bucketIndex(key), nil
}

func (t *Table[V]) find(key string) *internal.Node[V] {
	return internal.Find(t.buckets[t.bucketIndex(key)], key)
}

// Set stores value under key, overwriting the value of an existing entry in
// place. A new key is copied into storage owned by the table. When the
// allocator refuses storage for a new entry the table is left untouched.
func (t *Table[V]) Set(key string, value V) error {
	if err := t.check(); err != nil {
		return err
	}
	if node := t.find(key); node != nil {
		node.Value = value
		return nil
	}
	if err := t.alloc.Alloc(KindKey, len(key)); err != nil {
		return t.allocFailed(key, err)
	}
	if err := t.alloc.Alloc(KindEntry, 1); err != nil {
		t.alloc.Free(KindKey, len(key))
		return t.allocFailed(key, err)
	}
	slot := internal.TailSlot(&t.buckets[t.bucketIndex(key)])
	*slot = internal.NewNode(key, value)
	t.size++
	return nil
}

func (t *Table[V]) allocFailed(key string, err error) error {
	t.log.WithError(err).WithField("key", key).Warn("entry allocation refused")
	return fmt.Errorf("%w: key %q: %v", ErrAllocationFailure, key, err)
}

// Get returns the value stored under key, or a *KeyNotFoundError.
func (t *Table[V]) Get(key string) (v V, err error) {
	ref, err := t.GetRef(key)
	if err != nil {
		return v, err
	}
	return *ref, nil
}

// GetRef returns a pointer to the value stored under key. Later overwrites of
// the key are visible through it; it must not be used after Destroy.
func (t *Table[V]) GetRef(key string) (*V, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	node := t.find(key)
	if node == nil {
		return nil, &KeyNotFoundError{Key: key}
	}
	return &node.Value, nil
}

func (t *Table[V]) Contains(key string) bool {
	if t.check() != nil {
		return false
	}
	return t.find(key) != nil
}

func (t *Table[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *Table[V]) Capacity() int {
	if t == nil {
		return 0
	}
	return t.capacity
}

// Range calls f for every entry in bucket order, and in insertion order
// within a bucket, until f returns false.
func (t *Table[V]) Range(f func(key string, v V) bool) {
	if t.check() != nil {
		return
	}
	for _, head := range t.buckets {
		for p := head; p != nil; p = p.Next {
			if !f(p.Key, p.Value) {
				return
			}
		}
	}
}

func (t *Table[V]) Keys() []string {
	arr := make([]string, 0, t.Len())
	t.Range(func(key string, _ V) bool {
		arr = append(arr, key)
		return true
	})
	return arr
}

// Destroy releases every entry and the bucket array. It is safe to call more
// than once; every other operation on a destroyed table fails with
// ErrDestroyed.
func (t *Table[V]) Destroy() {
	if t.check() != nil {
		return
	}
	released := 0
	for i := range t.buckets {
		released += internal.Release(&t.buckets[i], func(node *internal.Node[V]) {
			t.alloc.Free(KindKey, len(node.Key))
			t.alloc.Free(KindEntry, 1)
		})
	}
	t.alloc.Free(KindBuckets, len(t.buckets))
	t.buckets = nil
	t.size = 0
	t.log.WithField("entries", released).Debug("table destroyed")
}
