package hashtable

import (
	"github.com/tuannh982/strhash/hashtable/internal"
	"github.com/tuannh982/strhash/utils/math"
)

// Stats describes how entries are spread over the buckets. IdealChain is the
// longest chain a perfect hash would produce for the same entry count.
type Stats struct {
	Buckets      int
	Entries      int
	UsedBuckets  int
	LongestChain int
	IdealChain   int
	LoadFactor   float64
}

func (t *Table[V]) Stats() Stats {
	if t.check() != nil {
		return Stats{}
	}
	s := Stats{
		Buckets: len(t.buckets),
		Entries: t.size,
	}
	for _, head := range t.buckets {
		n := internal.Len(head)
		if n > 0 {
			s.UsedBuckets++
		}
		s.LongestChain = math.Max(s.LongestChain, n)
	}
	s.IdealChain = math.DivCeil(s.Entries, s.Buckets)
	s.LoadFactor = float64(s.Entries) / float64(s.Buckets)
	return s
}
