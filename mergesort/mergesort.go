package mergesort

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Sequence is implemented by types which are able to present their contents
// as a slice of values.
type Sequence[K constraints.Ordered] interface {
	Values() []K
}

// Sort returns a new slice holding the values of the input in ascending order.
// The input slice is left untouched.
func Sort[K constraints.Ordered](values []K) []K {
	out := make([]K, len(values))
	copy(out, values)
	if len(out) <= 1 {
		return out
	}
	buf := make([]K, len(out))
	sortRange(out, buf)
	return out
}

// sortRange sorts s in place, using buf (of equal length) as scratch space.
// The left half gets the extra element for odd lengths.
func sortRange[K constraints.Ordered](s, buf []K) {
	if len(s) <= 1 {
		return
	}
	mid := (len(s) + 1) / 2
	sortRange(s[:mid], buf[:mid])
	sortRange(s[mid:], buf[mid:])
	merge(s[:mid], s[mid:], buf)
	copy(s, buf)
}

// merge interleaves two ascending runs into dst. On equal heads both values
// are emitted, left one first.
func merge[K constraints.Ordered](left, right, dst []K) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		switch {
		case left[i] < right[j]:
			dst[k] = left[i]
			i++
			k++
		case left[i] > right[j]:
			dst[k] = right[j]
			j++
			k++
		default:
			dst[k], dst[k+1] = left[i], right[j]
			i++
			j++
			k += 2
		}
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}

// FromSequence sorts an arbitrary sequence of values. seq may be a []K, an
// iter.Seq[K] or a Sequence[K]. Any other input, including nil, results in
// ErrInvalidInput.
func FromSequence[K constraints.Ordered](seq any) ([]K, error) {
	switch s := seq.(type) {
	case []K:
		return Sort(s), nil
	case iter.Seq[K]:
		if s == nil {
			break
		}
		var values []K
		for v := range s {
			values = append(values, v)
		}
		return Sort(values), nil
	case func(func(K) bool):
		if s == nil {
			break
		}
		return FromSequence[K](iter.Seq[K](s))
	case Sequence[K]:
		return Sort(s.Values()), nil
	}
	tracer().Errorf("mergesort: cannot sort input of type %T", seq)
	return nil, fmt.Errorf("%w: %T is not a sequence", ErrInvalidInput, seq)
}

// IsSorted reports whether values are in ascending order.
func IsSorted[K constraints.Ordered](values []K) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}
