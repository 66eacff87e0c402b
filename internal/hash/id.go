// Package hash hashes a string key down to a 64-bit id.
//
// This codec's only caller is internal/shape, which hashes a reflect.Type's
// package path and name to memoize that type's struct field-walk plan
// across repeated Encode/Decode calls, rather than re-deriving it from
// reflect.VisibleFields on every call.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
