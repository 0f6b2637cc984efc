package gqlpager

const (
	// NoMaxPageSize disables the page size cap.
	NoMaxPageSize = 0
	// DefaultPage is the page returned when "page" is omitted.
	DefaultPage = 1
	// DefaultPageSize is the page size used when nothing else configures one.
	DefaultPageSize = 25
)

// IsNormalizedPageSizeMax clamps size to maxSize. The boolean reports whether
// size was already within bounds. NoMaxPageSize disables the upper bound.
func IsNormalizedPageSizeMax(size int, maxSize int) (int, bool) {
	if maxSize != NoMaxPageSize && size > maxSize {
		return maxSize, false
	}

	return size, true
}

// NormalizePageSizeMax is IsNormalizedPageSizeMax without the boolean.
func NormalizePageSizeMax(size int, maxSize int) int {
	ret, _ := IsNormalizedPageSizeMax(size, maxSize)
	return ret
}
