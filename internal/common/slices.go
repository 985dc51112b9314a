package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Unique returns the distinct elements of s in order of first occurrence,
// and how many repeated elements were dropped. s is not modified.
func Unique[S ~[]E, E comparable](s S) (S, int) {
	seen := make(map[E]struct{}, len(s))
	out := make(S, 0, len(s))

	for _, e := range s {
		if _, ok := seen[e]; ok {
			continue
		}

		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out, len(s) - len(out)
}

// Truncate returns at most the first n elements of s. A non-positive n
// returns s unchanged.
func Truncate[S ~[]E, E any](s S, n int) S {
	if n <= 0 || n >= len(s) {
		return s
	}

	return s[:n]
}
