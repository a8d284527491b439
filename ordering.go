package wordtree

import (
	"cmp"
	"fmt"
)

type orderKind uint8

const (
	orderUnset orderKind = iota
	orderNatural
	orderKey
	orderComparator
)

var orderNames = [...]string{"unset", "natural", "key", "comparator"}

// Ordering selects how elements of a tree are compared. It is a closed set
// of variants, created by Natural, ByKey or ByComparator. The zero value is
// not a valid ordering.
type Ordering[T any] struct {
	kind    orderKind
	compare func(a, b T) int
}

// Natural orders elements by their own total order.
func Natural[T cmp.Ordered]() Ordering[T] {
	return Ordering[T]{kind: orderNatural, compare: cmp.Compare[T]}
}

// ByKey orders elements by the natural order of a key derived from each
// element. Elements with equal keys are duplicates.
func ByKey[T any, K cmp.Ordered](key func(T) K) Ordering[T] {
	if key == nil {
		return Ordering[T]{}
	}
	return Ordering[T]{
		kind: orderKey,
		compare: func(a, b T) int {
			return cmp.Compare(key(a), key(b))
		},
	}
}

// ByComparator orders elements by a three-way comparison function, following
// the convention of cmp.Compare: negative if a < b, zero if a == b, positive
// if a > b. Trees or insertions using a comparator ordering must provide a
// MergeFunc.
func ByComparator[T any](compare func(a, b T) int) Ordering[T] {
	if compare == nil {
		return Ordering[T]{}
	}
	return Ordering[T]{kind: orderComparator, compare: compare}
}

// IsValid reports whether o has been created by one of the constructors.
func (o Ordering[T]) IsValid() bool {
	return o.kind != orderUnset && o.compare != nil
}

func (o Ordering[T]) String() string {
	return orderNames[o.kind]
}

// Compare compares a and b under ordering o.
func (o Ordering[T]) Compare(a, b T) int {
	assert(o.IsValid(), "Compare called on zero ordering")
	return o.compare(a, b)
}

// requiresMerge is true for orderings where silently dropping duplicates is
// not an option.
func (o Ordering[T]) requiresMerge() bool {
	return o.kind == orderComparator
}

// MergeFunc folds an incoming duplicate into the element already present in
// the tree. existing points into the tree node and may be modified in place.
// The tree does not retain incoming after the call returns.
type MergeFunc[T any] func(existing *T, incoming T)

func checkOrdering[T any](ord Ordering[T], merge MergeFunc[T]) error {
	if !ord.IsValid() {
		return fmt.Errorf("%w: ordering is required", ErrInvalidConfig)
	}
	if ord.requiresMerge() && merge == nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrMissingMerge)
	}
	return nil
}
