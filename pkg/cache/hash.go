package cache

import (
	"encoding/json"
	"fmt"

	"github.com/zeebo/xxh3"
)

// Key builds a deterministic cache key from a prefix and any JSON-encodable
// parts. Identical parts always hash to the same key, so an instance plus
// its solver configuration maps to exactly one cache entry.
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s-%016x", prefix, xxh3.Hash(data))
}
