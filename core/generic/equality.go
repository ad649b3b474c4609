package generic

import "reflect"

// Record is a loosely shaped view record: field names mapped to values, the
// way JSON bodies decode and view state is held. It is an alias so plain
// map[string]any values interchange freely.
type Record = map[string]any

// SequenceEquals reports deep equality of two sequences: same length and
// every position equal. Positions where both sides are themselves sequences
// are compared recursively; any other position is compared directly, so a
// nesting-shape mismatch (one side a sequence, the other not) resolves to
// not-equal rather than an error.
//
// There is no cycle guard; cyclic structures recurse without bound.
func SequenceEquals(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		as, aok := a[i].([]any)
		bs, bok := b[i].([]any)
		if aok && bok {
			if !SequenceEquals(as, bs) {
				return false
			}
			continue
		}
		if !directEquals(a[i], b[i]) {
			return false
		}
	}
	return true
}

// RecordEquals reports deep equality of two records: the same field set on
// both sides, with primitive values compared by value and nested records or
// sequences compared recursively. A field present on one side only, even
// with a nil value, breaks equality.
func RecordEquals(a, b Record) bool {
	if len(a) != len(b) {
		return false
	}
	for name, av := range a {
		bv, ok := b[name]
		if !ok {
			return false
		}
		if !fieldEquals(av, bv) {
			return false
		}
	}
	return true
}

// fieldEquals compares a single field value, recursing into nested records
// and sequences and falling back to direct comparison otherwise.
func fieldEquals(a, b any) bool {
	if am, ok := a.(Record); ok {
		if bm, ok := b.(Record); ok {
			return RecordEquals(am, bm)
		}
		return false
	}
	if as, ok := a.([]any); ok {
		if bs, ok := b.([]any); ok {
			return SequenceEquals(as, bs)
		}
		return false
	}
	return directEquals(a, b)
}

// directEquals compares two values without recursion. It never panics:
// values of different concrete types are not equal, and values Go cannot
// compare with == (maps, slices, functions) fall back to identity of the
// underlying object.
func directEquals(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	if ra.Comparable() {
		return a == b
	}
	switch ra.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return ra.Pointer() == rb.Pointer()
	}
	return false
}
