// Package keys builds and dissects the colon separated keys used in
// redis and the caches in front of it.
package keys

import "strings"

const (
	// PfxHealthCheck prefixes the liveness probe keys.
	PfxHealthCheck = "healthcheck"
)

// CustomKey joins components with the given delimiter.
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey joins components into a colon separated redis key.
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the leading components of a key for metric tags,
// two of them when the key is deep enough, so tag cardinality stays
// low.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	switch {
	case len(s) > 2:
		return s[0] + ":" + s[1]
	case len(s) == 2:
		return s[0]
	default:
		return ""
	}
}
