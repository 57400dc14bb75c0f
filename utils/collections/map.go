package collections

// Map is the surface shared by the builtin-map backed hashMap and the chained
// string table. Set always upserts; Get of an absent key is an error, never a
// zero value.
type Map[K any, V any] interface {
	Contains(k K) bool
	Set(k K, v V) error
	Get(k K) (V, error)
	Len() int
	Keys() []K
}
