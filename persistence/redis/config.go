package redis

import "time"

// Config lists independent redis nodes. Engagement keys are spread over them
// with consistent hashing, so each address is a standalone server rather than
// a cluster member.
type Config struct {
	Addrs                []string
	Namespace            string
	PoolSize             int
	Password             string
	PartitionCount       int
	ConnectRetries       int
	ConnectRetryInterval time.Duration
}
