// Package hash derives stable identifiers for analysis pair labels.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a pair label such as "HH" or "DA".
func ID(label string) uint64 {
	return xxhash.Sum64String(label)
}
