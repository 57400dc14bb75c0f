package hashtable

import "fmt"

type AllocKind int

const (
	// KindBuckets is the bucket array, counted in buckets.
	KindBuckets AllocKind = iota
	// KindEntry is one chain entry.
	KindEntry
	// KindKey is the owned copy of a key, counted in bytes.
	KindKey
	kindCount
)

func (k AllocKind) String() string {
	switch k {
	case KindBuckets:
		return "buckets"
	case KindEntry:
		return "entry"
	case KindKey:
		return "key"
	default:
		return fmt.Sprintf("AllocKind(%d)", int(k))
	}
}

// Allocator is consulted before the table takes storage and told when it
// gives storage back. A non-nil error from Alloc makes the requesting
// operation fail with ErrAllocationFailure and leaves the table unchanged.
type Allocator interface {
	Alloc(kind AllocKind, n int) error
	Free(kind AllocKind, n int)
}

// HeapAllocator grants every request.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(AllocKind, int) error { return nil }

func (HeapAllocator) Free(AllocKind, int) {}

// BudgetAllocator tracks live storage per kind and refuses entry or key
// requests that would go over the configured limits. A zero limit means
// unlimited.
type BudgetAllocator struct {
	MaxEntries  int
	MaxKeyBytes int

	live        [kindCount]int
	outstanding [kindCount]int
	total       [kindCount]int
}

func (a *BudgetAllocator) Alloc(kind AllocKind, n int) error {
	if kind < 0 || kind >= kindCount {
		return fmt.Errorf("%w: unknown allocation kind %v", ErrInvalidArgument, kind)
	}
	switch kind {
	case KindEntry:
		if a.MaxEntries > 0 && a.live[kind]+n > a.MaxEntries {
			return fmt.Errorf("%w: %d entries", ErrBudgetExceeded, a.MaxEntries)
		}
	case KindKey:
		if a.MaxKeyBytes > 0 && a.live[kind]+n > a.MaxKeyBytes {
			return fmt.Errorf("%w: %d key bytes", ErrBudgetExceeded, a.MaxKeyBytes)
		}
	}
	a.live[kind] += n
	a.outstanding[kind]++
	a.total[kind]++
	return nil
}

func (a *BudgetAllocator) Free(kind AllocKind, n int) {
	if kind < 0 || kind >= kindCount {
		return
	}
	a.live[kind] -= n
	a.outstanding[kind]--
}

// Live reports the units of kind currently held.
func (a *BudgetAllocator) Live(kind AllocKind) int {
	return a.live[kind]
}

// Outstanding reports the granted requests of kind not yet freed.
func (a *BudgetAllocator) Outstanding(kind AllocKind) int {
	return a.outstanding[kind]
}

// Total reports every granted request of kind, freed or not.
func (a *BudgetAllocator) Total(kind AllocKind) int {
	return a.total[kind]
}
