package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis every repository depends on.
// redis.UniversalClient satisfies it for single, cluster and failover setups.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by Get when a key does not exist
var Nil = redis.Nil
