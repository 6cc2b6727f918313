package textutil

// Flatten performs a one-level flattening of nested into a single slice.
// Deeper nesting is left as-is.
func Flatten[T any](nested [][]T) []T {
	size := 0
	for _, sub := range nested {
		size += len(sub)
	}
	flat := make([]T, 0, size)
	for _, sub := range nested {
		flat = append(flat, sub...)
	}
	return flat
}

// UniquePreserveOrder returns the unique items of the input in first-seen
// order.
func UniquePreserveOrder[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}
