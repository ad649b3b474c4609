package generic

// Target is the minimal mutable ordered collection CrossFill reconciles.
// observe.Collection satisfies it; SliceTarget adapts a plain slice.
type Target[E any] interface {
	// Len returns the number of elements currently held.
	Len() int
	// At returns the element at index i.
	At(i int) E
	// Append adds an element at the end.
	Append(e E)
	// RemoveAt removes the element at index i, shifting later elements down.
	RemoveAt(i int)
}

// Loader produces the entry for a key missing from the target. ok=false
// means the entry is not available yet (the loader may have kicked off an
// asynchronous fetch); the key is simply skipped this round. A non-nil error
// aborts the cross-fill.
type Loader[K comparable, E any] func(key K) (entry E, ok bool, err error)

// sliceTarget adapts a *[]E so CrossFill can reconcile plain slices.
type sliceTarget[E any] struct {
	items *[]E
}

// SliceTarget wraps a slice pointer as a CrossFill target. Mutations are
// applied through the pointer, so the caller's slice header is updated.
func SliceTarget[E any](items *[]E) Target[E] {
	return sliceTarget[E]{items: items}
}

func (s sliceTarget[E]) Len() int    { return len(*s.items) }
func (s sliceTarget[E]) At(i int) E  { return (*s.items)[i] }
func (s sliceTarget[E]) Append(e E)  { *s.items = append(*s.items, e) }
func (s sliceTarget[E]) RemoveAt(i int) {
	*s.items = append((*s.items)[:i], (*s.items)[i+1:]...)
}

// CrossFill reconciles target against newKeys. Every key in newKeys that is
// missing from the target is loaded and, when ready, appended in newKeys
// order. When pruneStale is set, the first element matching each key that
// disappeared from newKeys is removed. Retained elements keep their relative
// order.
//
// A loader error aborts immediately; entries appended before the failure
// stay applied (there is no rollback). Pruning only runs after all additions
// succeeded.
func CrossFill[K comparable, E any](newKeys []K, target Target[E], loader Loader[K, E], key func(E) K, pruneStale bool) error {
	current := make(map[K]struct{}, target.Len())
	for i := 0; i < target.Len(); i++ {
		current[key(target.At(i))] = struct{}{}
	}

	wanted := make(map[K]struct{}, len(newKeys))
	for _, k := range newKeys {
		wanted[k] = struct{}{}
		if _, exists := current[k]; exists {
			continue
		}
		entry, ok, err := loader(k)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		target.Append(entry)
	}

	if !pruneStale {
		return nil
	}

	for k := range current {
		if _, keep := wanted[k]; keep {
			continue
		}
		for i := 0; i < target.Len(); i++ {
			if key(target.At(i)) == k {
				target.RemoveAt(i)
				break
			}
		}
	}

	return nil
}
