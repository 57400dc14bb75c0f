package hashtable

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to a bucket selector. The table reduces the result
// modulo its capacity.
type HashFunc func(key string) uint32

// Hash is the mid-square hash used by default. The code points of the key are
// summed into a 64-bit accumulator, the sum is squared and the middle 32 bits
// of the product (bits 16..47) are kept.
func Hash(key string) uint32 {
	var sum uint64
	for _, r := range key {
		sum += uint64(r)
	}
	return uint32((sum * sum) >> 16)
}

// XXHash folds the 64-bit xxhash digest of key into 32 bits.
func XXHash(key string) uint32 {
	h := xxhash.Sum64String(key)
	return uint32(h ^ h>>32)
}
