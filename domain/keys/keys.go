package keys

import "strings"

const (
	// PfxListings prefixes listing cache keys
	PfxListings = "listings"
)

// CustomKey joins key components with the specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey joins cache key components
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}
