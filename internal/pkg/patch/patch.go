package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Keep returns the stored value unchanged when no patch value was supplied
func Keep[T any](patch *T, stored *T) *T {
	if patch != nil {
		return patch
	}
	return stored
}
