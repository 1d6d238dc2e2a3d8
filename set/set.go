// Package set provides sorted sets with binary-search membership.
package set

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Slice must be sorted in ascending order.
type Slice[T constraints.Ordered] []T

// Of returns the distinct values of xs as a Slice.
func Of[T constraints.Ordered](xs ...T) Slice[T] {
	a := make(Slice[T], 0, len(xs))
	for _, x := range xs {
		a.Insert(x)
	}
	return a
}

func (a Slice[T]) search(x T) int {
	return sort.Search(len(a), func(i int) bool { return a[i] >= x })
}

// Insert x in place if not exists; returns x index and true if inserted.
func (a *Slice[T]) Insert(x T) (i int, ok bool) {
	i = a.search(x)
	if ok = i == len(*a) || (*a)[i] != x; ok {
		*a = append(*a, *new(T))
		copy((*a)[i+1:], (*a)[i:])
		(*a)[i] = x
	}
	return
}

func (a Slice[T]) Has(x T) bool {
	i := a.search(x)
	return i < len(a) && a[i] == x
}

// Missing returns the values of xs not in a, in the order given.
func (a Slice[T]) Missing(xs []T) (out []T) {
	for _, x := range xs {
		if !a.Has(x) {
			out = append(out, x)
		}
	}
	return out
}
