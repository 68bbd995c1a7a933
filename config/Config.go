package config

import (
	"fmt"
	"time"

	"github.com/mohitkumar/engage/analytics"
	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/logger"
)

type StorageType string

const STORAGE_TYPE_REDIS StorageType = "redis"
const STORAGE_TYPE_INMEM StorageType = "memory"

type Config struct {
	RedisConfig     RedisStorageConfig
	HttpPort        int
	StorageType     StorageType
	LogLevel        string
	LogEncoding     logger.Encoding
	CacheTTL        time.Duration
	MetricsInterval time.Duration
	ExtractorPaths  facts.Paths
	AnalyticsConfig analytics.DataCollectorConfig
}

type RedisStorageConfig struct {
	Addrs                []string
	Namespace            string
	Password             string
	PoolSize             int
	PartitionCount       int
	ConnectRetries       int
	ConnectRetryInterval time.Duration
}

func (c Config) Validate() error {
	switch c.StorageType {
	case STORAGE_TYPE_REDIS:
		if len(c.RedisConfig.Addrs) == 0 {
			return fmt.Errorf("redis storage needs at least one address")
		}
	case STORAGE_TYPE_INMEM:
	default:
		return fmt.Errorf("unsupported storage type %q", c.StorageType)
	}
	if c.HttpPort <= 0 {
		return fmt.Errorf("invalid http port %d", c.HttpPort)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache ttl must be positive")
	}
	return nil
}
