package container

import (
	"context"
	"sync"

	"github.com/mohitkumar/engage/analytics"
	"github.com/mohitkumar/engage/cache"
	"github.com/mohitkumar/engage/config"
	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/logger"
	"github.com/mohitkumar/engage/metrics"
	"github.com/mohitkumar/engage/persistence"
	"github.com/mohitkumar/engage/persistence/memory"
	rd "github.com/mohitkumar/engage/persistence/redis"
	"github.com/mohitkumar/engage/util"
	"go.uber.org/zap"
)

type closer interface {
	Close() error
}

type DIContiner struct {
	initialized    bool
	factStore      persistence.FactStore
	decisionCache  *cache.DecisionCache
	collector      analytics.DecisionCollector
	metrics        *metrics.Metrics
	extractor      *facts.Extractor
	DocumentEncDec util.EncoderDecoder[facts.Document]
}

func (p *DIContiner) setInitialized() {
	p.initialized = true
}

func NewDiContainer() *DIContiner {
	return &DIContiner{
		initialized: false,
	}
}

func (d *DIContiner) Init(ctx context.Context, conf config.Config, wg *sync.WaitGroup) error {
	d.DocumentEncDec = util.NewJsonEncoderDecoder[facts.Document]()

	switch conf.StorageType {
	case config.STORAGE_TYPE_REDIS:
		rdConf := rd.Config{
			Addrs:                conf.RedisConfig.Addrs,
			Namespace:            conf.RedisConfig.Namespace,
			Password:             conf.RedisConfig.Password,
			PoolSize:             conf.RedisConfig.PoolSize,
			PartitionCount:       conf.RedisConfig.PartitionCount,
			ConnectRetries:       conf.RedisConfig.ConnectRetries,
			ConnectRetryInterval: conf.RedisConfig.ConnectRetryInterval,
		}
		store := rd.NewRedisFactStore(rdConf, d.DocumentEncDec)
		if err := store.Connect(ctx); err != nil {
			logger.Error("can not connect to redis", zap.Strings("addrs", rdConf.Addrs), zap.Error(err))
			_ = store.Close()
			return err
		}
		d.factStore = store
	case config.STORAGE_TYPE_INMEM:
		d.factStore = memory.NewFactStore()
	}

	collector, err := analytics.NewDataCollector(conf.AnalyticsConfig, wg)
	if err != nil {
		return err
	}
	d.collector = collector
	d.decisionCache = cache.NewDecisionCache(conf.CacheTTL)
	d.metrics = metrics.New()
	d.extractor = facts.NewExtractor(conf.ExtractorPaths)
	d.setInitialized()
	return nil
}

func (d *DIContiner) Close() error {
	if !d.initialized {
		return nil
	}
	if err := d.collector.Close(); err != nil {
		return err
	}
	if c, ok := d.factStore.(closer); ok {
		return c.Close()
	}
	return nil
}

func (d *DIContiner) GetFactStore() persistence.FactStore {
	if !d.initialized {
		panic("persistence not initalized")
	}
	return d.factStore
}

func (d *DIContiner) GetDecisionCache() *cache.DecisionCache {
	if !d.initialized {
		panic("cache not initalized")
	}
	return d.decisionCache
}

func (d *DIContiner) GetCollector() analytics.DecisionCollector {
	if !d.initialized {
		panic("analytics not initalized")
	}
	return d.collector
}

func (d *DIContiner) GetMetrics() *metrics.Metrics {
	if !d.initialized {
		panic("metrics not initalized")
	}
	return d.metrics
}

func (d *DIContiner) GetExtractor() *facts.Extractor {
	if !d.initialized {
		panic("extractor not initalized")
	}
	return d.extractor
}
