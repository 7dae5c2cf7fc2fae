package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the command surface the repositories depend on. Standalone,
// cluster and sentinel clients all satisfy it.
type Client interface {
	redis.UniversalClient
}
