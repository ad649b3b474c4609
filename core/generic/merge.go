package generic

// Merge applies a three-way, field-level merge onto target. For each listed
// field:
//
//   - target still matches original (unmodified since the last sync): the
//     field takes incoming's value, or is deleted when incoming dropped it.
//   - neither original nor target define the field: the field is set from
//     incoming when incoming defines it.
//   - anything else means the target diverged locally; the field is left
//     untouched so local edits win.
//
// Only top-level fields are merged; nested structures are assigned or
// deleted wholesale, never merged recursively.
func Merge(original, incoming, target Record, fields []string) {
	for _, name := range fields {
		origVal, inOrig := original[name]
		targetVal, inTarget := target[name]
		incomingVal, inIncoming := incoming[name]

		switch {
		case inOrig && inTarget && fieldEquals(origVal, targetVal):
			if inIncoming {
				target[name] = incomingVal
			} else {
				delete(target, name)
			}
		case !inOrig && !inTarget:
			if inIncoming {
				target[name] = incomingVal
			}
		}
	}
}
