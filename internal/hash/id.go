// Package hash computes stable fingerprints of sample sets.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Samples computes the xxHash64 of a labelled list of sample sets.
//
// The label is hashed first, followed by the length and the IEEE-754 bit pattern of
// every value of every set. Lengths are part of the stream so that moving a value from
// one set to the next changes the fingerprint. NaN payloads are hashed as-is.
func Samples(label string, sets ...[]float64) uint64 {
	if len(sets) == 0 {
		return ID(label)
	}

	d := xxhash.New()
	_, _ = d.WriteString(label)

	var buf [8]byte
	for _, set := range sets {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(set)))
		_, _ = d.Write(buf[:])
		for _, v := range set {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
