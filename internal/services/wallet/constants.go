package wallet

import (
	"fmt"
	"time"
)

// Cache key prefix and TTL for wallet reads.
const (
	cachePrefix   = "wallet:"
	CacheDuration = 5 * time.Minute
)

// CacheKey returns the cache key for a wallet. The transaction service
// uses it to invalidate the cached wallet after a balance change.
func CacheKey(id uint) string {
	return fmt.Sprintf("%s%d", cachePrefix, id)
}
