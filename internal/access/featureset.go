package access

import "math/bits"

// maxFeatures is the width of a featureSet.
const maxFeatures = 64

// featureSet is a bitset over the feature enumeration. Bit i is set when
// knownFeatures[i] is granted.
type featureSet uint64

// has reports whether bit is set. Out-of-range bits are never set.
func (s featureSet) has(bit int) bool {
	if bit < 0 || bit >= maxFeatures {
		return false
	}
	return s&(1<<bit) != 0
}

// set returns s with bit added.
func (s featureSet) set(bit int) featureSet {
	if bit < 0 || bit >= maxFeatures {
		return s
	}
	return s | (1 << bit)
}

// count returns the number of set bits.
func (s featureSet) count() int {
	return bits.OnesCount64(uint64(s))
}

// contains reports whether f is a known feature present in the set.
func (s featureSet) contains(f Feature) bool {
	bit, ok := featureIndex[f]
	if !ok {
		return false
	}
	return s.has(bit)
}
