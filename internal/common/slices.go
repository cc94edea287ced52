package common

// First returns the leading element of s; ok is false when s is empty.
func First[S ~[]E, E any](s S) (first E, ok bool) {
	if len(s) == 0 {
		return first, false
	}

	return s[0], true
}
