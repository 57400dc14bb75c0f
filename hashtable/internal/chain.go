package internal

import "strings"

// Node is one link of a bucket chain. The chain owns every node reachable
// from its head.
type Node[V any] struct {
	Key   string
	Value V
	Next  *Node[V]
}

func NewNode[V any](key string, value V) *Node[V] {
	return &Node[V]{
		Key:   strings.Clone(key),
		Value: value,
	}
}

func Find[V any](head *Node[V], key string) *Node[V] {
	for p := head; p != nil; p = p.Next {
		if p.Key == key {
			return p
		}
	}
	return nil
}

// TailSlot returns the link a new node must be stored into so that it
// becomes the last node of the chain.
func TailSlot[V any](head **Node[V]) **Node[V] {
	last := head
	for *last != nil {
		last = &(*last).Next
	}
	return last
}

func Len[V any](head *Node[V]) int {
	n := 0
	for p := head; p != nil; p = p.Next {
		n++
	}
	return n
}

// Release detaches the whole chain from *head, hands every node to fn before
// clearing it, and returns the number of nodes released. *head is nil on
// return.
func Release[V any](head **Node[V], fn func(*Node[V])) int {
	p := *head
	*head = nil
	n := 0
	for p != nil {
		next := p.Next
		p.Next = nil
		if fn != nil {
			fn(p)
		}
		var zero V
		p.Key = ""
		p.Value = zero
		p = next
		n++
	}
	return n
}
