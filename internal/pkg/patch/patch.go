// Package patch merges partial update requests onto stored values.
package patch

// Coalesce returns *ptr when the field was sent, fallback otherwise.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Nullable merges an optional field whose stored value may itself be nil:
// a sent value wins, clear resets it to nil, otherwise fallback is kept.
func Nullable[T any](ptr *T, clear bool, fallback *T) *T {
	switch {
	case ptr != nil:
		return ptr
	case clear:
		return nil
	default:
		return fallback
	}
}
