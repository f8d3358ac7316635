package tfidf

import "math"

// Entry is a single non-zero component of a sparse Vector.
type Entry struct {
	Index  int
	Weight float64
}

// Vector is a sparse weight vector with entries in ascending index order.
// The zero value is the all-zero vector.
type Vector struct {
	entries []Entry
	normSq  float64
}

func newVector(entries []Entry) Vector {
	var normSq float64
	for _, e := range entries {
		normSq += e.Weight * e.Weight
	}
	return Vector{entries: entries, normSq: normSq}
}

// Entries returns the non-zero components. Callers must not modify the slice.
func (v Vector) Entries() []Entry {
	return v.entries
}

// Len returns the number of non-zero components.
func (v Vector) Len() int {
	return len(v.entries)
}

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	return len(v.entries) == 0
}

// Weight returns the component at idx.
func (v Vector) Weight(idx int) float64 {
	lo, hi := 0, len(v.entries)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case v.entries[mid].Index == idx:
			return v.entries[mid].Weight
		case v.entries[mid].Index < idx:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.normSq)
}

// Dot returns the inner product of v and other.
func (v Vector) Dot(other Vector) float64 {
	a, b := v.entries, other.entries
	var i, j int
	var dot float64
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index == b[j].Index:
			dot += a[i].Weight * b[j].Weight
			i++
			j++
		case a[i].Index < b[j].Index:
			i++
		default:
			j++
		}
	}
	return dot
}

// CosineSimilarity returns dot(a, b) / (|a| * |b|).
// A zero dot product returns 0 before any norm is touched, so zero vectors
// never reach the division.
func CosineSimilarity(a, b Vector) float64 {
	dot := a.Dot(b)
	if dot == 0 {
		return 0
	}
	cos := dot / math.Sqrt(a.normSq*b.normSq)
	if cos > 1 {
		return 1
	}
	return cos
}
