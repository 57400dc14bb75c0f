package hashtable

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tuannh982/strhash/utils/collections"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func quietLogger() *log.Entry {
	logger, _ := logtest.NewNullLogger()
	return log.NewEntry(logger)
}

func newTable[V any](t *testing.T, capacity int, opts ...Option) *Table[V] {
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	table, err := New[V](capacity, opts...)
	require.Nil(t, err)
	return table
}

func TestScenario(t *testing.T) {
	table := newTable[int](t, 4)
	require.Nil(t, table.Set("x", 1))
	require.Nil(t, table.Set("y", 2))
	v, err := table.Get("x")
	require.Nil(t, err)
	require.Equal(t, 1, v)
	_, err = table.Get("z")
	require.ErrorIs(t, err, ErrKeyNotFound)
	var notFound *KeyNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "z", notFound.Key)
	require.Contains(t, err.Error(), `"z"`)
}

func TestNewCapacity(t *testing.T) {
	for _, capacity := range []int{0, -5, MaxCapacity + 1} {
		table, err := New[int](capacity)
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Nil(t, table)
	}
	require.Equal(t, 1, newTable[int](t, 1).Capacity())
	table, err := NewDefault[string](WithLogger(quietLogger()))
	require.Nil(t, err)
	require.Equal(t, DefaultCapacity, table.Capacity())
	require.Equal(t, 0, table.Len())
}

func TestRoundTrip(t *testing.T) {
	table := newTable[string](t, 16)
	keys := []string{"", " ", "a", "A", "key", "KEY", "日本語", "tab\tkey"}
	for _, k := range keys {
		require.Nil(t, table.Set(k, "value of "+k))
	}
	for _, k := range keys {
		v, err := table.Get(k)
		require.Nil(t, err)
		require.Equal(t, "value of "+k, v)
	}
	require.Equal(t, len(keys), table.Len())
}

func TestOverwrite(t *testing.T) {
	table := newTable[int](t, 8)
	require.Nil(t, table.Set("k", 1))
	before := table.Len()
	require.Nil(t, table.Set("k", 2))
	require.Equal(t, before, table.Len())
	v, err := table.Get("k")
	require.Nil(t, err)
	require.Equal(t, 2, v)
}

func TestIndependence(t *testing.T) {
	table := newTable[int](t, 3)
	require.Nil(t, table.Set("k1", 1))
	require.Nil(t, table.Set("k2", 2))
	v, err := table.Get("k1")
	require.Nil(t, err)
	require.Equal(t, 1, v)
	v, err = table.Get("k2")
	require.Nil(t, err)
	require.Equal(t, 2, v)
}

func TestMissNeverReturnsZeroValue(t *testing.T) {
	table := newTable[int](t, 8)
	require.Nil(t, table.Set("present", 0))
	for _, k := range []string{"", "absent", "Present"} {
		_, err := table.Get(k)
		require.ErrorIs(t, err, ErrKeyNotFound)
		ref, err := table.GetRef(k)
		require.ErrorIs(t, err, ErrKeyNotFound)
		require.Nil(t, ref)
		require.Equal(t, false, table.Contains(k))
	}
	v, err := table.Get("present")
	require.Nil(t, err)
	require.Equal(t, 0, v)
}

func TestEmptyKeyIsDistinct(t *testing.T) {
	table := newTable[int](t, 1)
	require.Nil(t, table.Set("", 1))
	require.Nil(t, table.Set("a", 2))
	v, err := table.Get("")
	require.Nil(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, 2, table.Len())
}

func TestSingleBucketCollisions(t *testing.T) {
	table := newTable[int](t, 1)
	require.Nil(t, table.Set("a", 1))
	require.Nil(t, table.Set("b", 2))
	require.Nil(t, table.Set("c", 3))
	for k, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		v, err := table.Get(k)
		require.Nil(t, err)
		require.Equal(t, want, v)
	}
	require.Nil(t, table.Set("b", 20))
	if diff := cmp.Diff([]string{"a", "b", "c"}, table.Keys()); diff != "" {
		t.Fatalf("chain order mismatch (-want +got):\n%s", diff)
	}
	v, err := table.Get("b")
	require.Nil(t, err)
	require.Equal(t, 20, v)
}

func TestSameHashDifferentKeys(t *testing.T) {
	table := newTable[string](t, 64)
	require.Equal(t, Hash("listen"), Hash("silent"))
	require.Nil(t, table.Set("listen", "l"))
	require.Nil(t, table.Set("silent", "s"))
	v, err := table.Get("silent")
	require.Nil(t, err)
	require.Equal(t, "s", v)
	v, err = table.Get("listen")
	require.Nil(t, err)
	require.Equal(t, "l", v)
}

func TestGetRef(t *testing.T) {
	type point struct{ X, Y int }
	table := newTable[point](t, 4)
	require.Nil(t, table.Set("p", point{1, 2}))
	ref, err := table.GetRef("p")
	require.Nil(t, err)
	ref.X = 10
	v, err := table.Get("p")
	require.Nil(t, err)
	require.Equal(t, point{10, 2}, v)
	require.Nil(t, table.Set("p", point{3, 4}))
	require.Equal(t, point{3, 4}, *ref)
}

func TestRange(t *testing.T) {
	table := newTable[int](t, 4)
	for i := 0; i < 10; i++ {
		require.Nil(t, table.Set(fmt.Sprintf("key-%d", i), i))
	}
	sum := 0
	table.Range(func(_ string, v int) bool {
		sum += v
		return true
	})
	require.Equal(t, 45, sum)
	visited := 0
	table.Range(func(string, int) bool {
		visited++
		return visited < 3
	})
	require.Equal(t, 3, visited)
}

func TestCustomHashFunc(t *testing.T) {
	calls := 0
	table := newTable[int](t, 8, WithHashFunc(func(key string) uint32 {
		calls++
		return uint32(len(key))
	}))
	require.Nil(t, table.Set("abc", 3))
	require.Nil(t, table.Set("xyz", 4))
	v, err := table.Get("abc")
	require.Nil(t, err)
	require.Equal(t, 3, v)
	require.Greater(t, calls, 0)
	require.Equal(t, 1, table.Stats().UsedBuckets)

	xx := newTable[int](t, 8, WithHashFunc(XXHash))
	require.Nil(t, xx.Set("abc", 1))
	require.Equal(t, true, xx.Contains("abc"))
}

func TestNilTable(t *testing.T) {
	var table *Table[int]
	require.ErrorIs(t, table.Set("a", 1), ErrInvalidArgument)
	_, err := table.Get("a")
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Equal(t, false, table.Contains("a"))
	require.Equal(t, 0, table.Len())
	require.Equal(t, 0, table.Capacity())
	require.Empty(t, table.Keys())
	require.Equal(t, Stats{}, table.Stats())
	table.Destroy()
}

func TestDestroy(t *testing.T) {
	table := newTable[int](t, 4)
	require.Nil(t, table.Set("a", 1))
	table.Destroy()
	table.Destroy()
	require.Equal(t, 0, table.Len())
	require.ErrorIs(t, table.Set("a", 1), ErrDestroyed)
	require.ErrorIs(t, table.Set("a", 1), ErrInvalidArgument)
	_, err := table.Get("a")
	require.ErrorIs(t, err, ErrDestroyed)
	require.Equal(t, false, table.Contains("a"))
	require.Empty(t, table.Keys())

	empty := newTable[int](t, 4)
	empty.Destroy()
	require.Equal(t, 0, empty.Len())
}

func TestAgainstReferenceMap(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	table := newTable[int](t, 7)
	ref := collections.NewHashMap[string, int]()
	alphabet := []rune("abcXYZ01é")
	randomKey := func() string {
		n := rnd.Intn(5)
		rs := make([]rune, n)
		for i := range rs {
			rs[i] = alphabet[rnd.Intn(len(alphabet))]
		}
		return string(rs)
	}
	var m collections.Map[string, int] = table
	for i := 0; i < 2000; i++ {
		k := randomKey()
		if rnd.Intn(3) == 0 {
			want, wantErr := ref.Get(k)
			got, err := m.Get(k)
			if wantErr != nil {
				require.ErrorIs(t, err, ErrKeyNotFound)
				continue
			}
			require.Nil(t, err)
			require.Equal(t, want, got)
			continue
		}
		require.Nil(t, ref.Set(k, i))
		require.Nil(t, m.Set(k, i))
		require.Equal(t, ref.Len(), m.Len())
	}

	seen := collections.NewStringSet()
	for _, k := range table.Keys() {
		require.Nil(t, seen.Add(k), "key %q stored twice", k)
	}
	want := ref.Keys()
	got := table.Keys()
	sort.Strings(want)
	sort.Strings(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("key set mismatch (-want +got):\n%s", diff)
	}
}

func TestKeysAreReachableFromTheirBucket(t *testing.T) {
	table := newTable[int](t, 5)
	for i := 0; i < 100; i++ {
		require.Nil(t, table.Set(fmt.Sprint(i*i), i))
	}
	for i, head := range table.buckets {
		for p := head; p != nil; p = p.Next {
			idx, err := table.BucketIndex(p.Key)
			require.Nil(t, err)
			require.Equal(t, i, idx)
			require.Equal(t, int(Hash(p.Key)%5), idx)
		}
	}
	table.Destroy()
	_, err := table.BucketIndex("1")
	require.ErrorIs(t, err, ErrDestroyed)
}
