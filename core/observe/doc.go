// Package observe provides the change-notifying containers backing the
// console's server-side view state.
//
// A Collection is an ordered container that notifies subscribers about
// appends, removals and replacements. It satisfies generic.Target, so a
// collection can be reconciled directly with generic.CrossFill.
//
// Mutations are expected to come from a single logical execution context
// (the viewsync refresh path serializes them); the internal lock only makes
// concurrent reads from request handlers safe against an in-flight refresh.
// Subscribers are invoked synchronously after the mutation, outside the
// lock, and must not mutate the collection from within the callback.
package observe
