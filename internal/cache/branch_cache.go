package cache

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/quickquid/quickquid-api/internal/models"
)

const branchListKey = "branch:list"

// BranchListCache is the Redis-backed read model for the branch directory.
// The list is small and changes rarely, so a short TTL plus explicit
// invalidation on writes keeps it fresh.
type BranchListCache struct {
	cache *ViewCache[[]models.BankBranch]
}

func NewBranchListCache(client *goredis.Client, ttl time.Duration) *BranchListCache {
	return &BranchListCache{cache: NewViewCache[[]models.BankBranch](client, ttl)}
}

func (c *BranchListCache) GetBranchList(ctx context.Context) ([]models.BankBranch, bool) {
	branches, ok := c.cache.Get(ctx, branchListKey)
	if !ok {
		return nil, false
	}
	return *branches, true
}

func (c *BranchListCache) SetBranchList(ctx context.Context, branches []models.BankBranch) {
	c.cache.Set(ctx, branchListKey, &branches)
}

func (c *BranchListCache) InvalidateBranchList(ctx context.Context) {
	c.cache.Delete(ctx, branchListKey)
}
